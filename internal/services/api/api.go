// Package api provides the HTTP API for the application
package api

import (
	"context"

	"floaty/internal/adapters/remotetext"
	"floaty/internal/core/taskextract"
	"floaty/internal/platform/config"
	"floaty/internal/platform/logger"
	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/store"
	ptime "floaty/internal/platform/time"

	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	"floaty/internal/modkit/module"
	"floaty/internal/modkit/swaggerkit"

	activitymod "floaty/internal/services/api/activity/module"
	assistmod "floaty/internal/services/api/assist/module"
	highlightsmod "floaty/internal/services/api/highlights/module"
	librarymod "floaty/internal/services/api/library/module"
	metamod "floaty/internal/services/api/meta/module"
	notesmod "floaty/internal/services/api/notes/module"
	settingsmod "floaty/internal/services/api/settings/module"
	tasksmod "floaty/internal/services/api/tasks/module"

	metahttp "floaty/internal/services/api/meta/http"

	// Vault module (owns the Repository port)
	vaultmod "floaty/internal/services/vault/module"
)

// Options are the API options
type Options struct {
	// Config is the unprefixed root, sections are read by prefix
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Clock and Remote are nil in production
	Clock  ptime.Clock
	Remote remotetext.Service
}

// Extractors holds the configured extractor presets
type Extractors struct {
	Background *taskextract.Extractor
	Popup      *taskextract.Extractor
	Default    *taskextract.Extractor
}

// ExtractorsFromConfig reads FLOATY_EXTRACT_BACKGROUND_CAP and POPUP_CAP
func ExtractorsFromConfig(root config.Conf) Extractors {
	c := root.Prefix("FLOATY_EXTRACT_")
	bg := taskextract.Background()
	bg.Cap = c.MayInt("BACKGROUND_CAP", bg.Cap)
	popup := taskextract.Popup()
	popup.Cap = c.MayInt("POPUP_CAP", popup.Cap)
	return Extractors{
		Background: taskextract.New(bg),
		Popup:      taskextract.New(popup),
		Default:    taskextract.New(taskextract.Default()),
	}
}

func (e Extractors) presets() []metahttp.Preset {
	return []metahttp.Preset{
		{Name: "background", Extractor: e.Background},
		{Name: "popup", Extractor: e.Popup},
		{Name: "default", Extractor: e.Default},
	}
}

// Mount mounts the API service onto the given router. The returned channel
// closes once the activity recorder has flushed after ctx is done
func Mount(ctx context.Context, r phttp.Router, opt Options) (<-chan struct{}, error) {
	// shared deps for modules
	deps := modkit.FromStore(opt.Config, opt.Store)
	if opt.Logger != nil {
		deps.Log = opt.Logger
	}
	log := deps.Logger("api")
	clock := ptime.Or(opt.Clock)

	// Construct the vault first and extract its Repository port
	vault, err := vaultmod.New(ctx, deps, vaultmod.Options{Clock: clock})
	if err != nil {
		return nil, err
	}
	repo := module.MustPortsOf[vaultmod.Ports](vault).Repo

	ex := ExtractorsFromConfig(opt.Config)
	remote := opt.Remote
	if remote == nil {
		ro := remotetext.OptionsFromConfig(opt.Config)
		ro.Extractor = ex.Popup
		remote = remotetext.New(ro)
	}

	activity := activitymod.New(deps, modkit.WithPorts(activitymod.Ports{Vault: repo})).(*activitymod.Module)

	mods := []module.Module{
		vault, // include the vault so its ports are registered
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Presets: ex.presets()})),
		assistmod.New(deps),
		tasksmod.New(deps, modkit.WithPorts(tasksmod.Ports{
			Vault: repo, Remote: remote, Background: ex.Background, Clock: clock,
		})),
		notesmod.New(deps, modkit.WithPorts(notesmod.Ports{
			Vault: repo, Remote: remote, Popup: ex.Popup, Clock: clock,
		})),
		highlightsmod.New(deps, modkit.WithPorts(highlightsmod.Ports{Vault: repo, Clock: clock})),
		settingsmod.New(deps, modkit.WithPorts(settingsmod.Ports{Vault: repo})),
		librarymod.New(deps, modkit.WithPorts(librarymod.Ports{Vault: repo, Clock: clock})),
		activity,
	}

	apiCfg := opt.Config.Prefix("FLOATY_API_")

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(apiCfg)), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := activity.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("activity recorder stopped")
		}
	}()

	ev := log.Info().Str("vault", vault.Backend()).Bool("activity", deps.HasCH())
	if c, ok := remote.(*remotetext.Client); ok {
		ev = ev.Bool("remote_offline", c.Offline())
	}
	ev.Int("modules", len(mods)).Msg("api mounted")
	return done, nil
}
