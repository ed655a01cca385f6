package taskextract

// keywordSet is a small Aho-Corasick automaton over lowercased keywords.
// Matching is plain substring containment, so "do" hits inside "dog"

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans  [256]int32
	fail   int32
	output []int32 // keyword ids ending at this node
}

type keywordSet struct {
	nodes []acNode
	words []string
}

func newNode() acNode {
	var n acNode
	for i := range n.trans {
		n.trans[i] = -1
	}
	return n
}

// newKeywordSet builds the automaton for words, which must already be lowercased
func newKeywordSet(words []string) *keywordSet {
	k := &keywordSet{nodes: []acNode{newNode()}, words: words}
	for id, w := range words {
		k.add([]byte(w), int32(id))
	}
	k.build()
	return k
}

func (k *keywordSet) add(pat []byte, id int32) {
	if len(pat) == 0 {
		return
	}
	state := int32(0)
	for _, b := range pat {
		nxt := k.nodes[state].trans[b]
		if nxt == -1 {
			nxt = int32(len(k.nodes))
			k.nodes[state].trans[b] = nxt
			k.nodes = append(k.nodes, newNode())
		}
		state = nxt
	}
	k.nodes[state].output = append(k.nodes[state].output, id)
}

// build computes failure links breadth first and merges outputs along them
func (k *keywordSet) build() {
	q := make([]int32, 0, 64)
	for b := range 256 {
		if s := k.nodes[0].trans[b]; s != -1 {
			k.nodes[s].fail = 0
			q = append(q, s)
		}
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := k.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := k.nodes[r].fail
			for f != 0 && k.nodes[f].trans[b] == -1 {
				f = k.nodes[f].fail
			}
			if nxt := k.nodes[f].trans[b]; nxt != -1 {
				k.nodes[s].fail = nxt
			} else {
				k.nodes[s].fail = 0
			}
			k.nodes[s].output = append(k.nodes[s].output, k.nodes[k.nodes[s].fail].output...)
		}
	}
}

// scan walks text and calls cb for every keyword id that ends at a position
// scanning stops when cb returns false
func (k *keywordSet) scan(text string, cb func(id int32) bool) {
	state := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && k.nodes[state].trans[b] == -1 {
			state = k.nodes[state].fail
		}
		if nxt := k.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range k.nodes[state].output {
			if !cb(id) {
				return
			}
		}
	}
}

// Any reports whether lower contains at least one keyword
func (k *keywordSet) Any(lower string) bool {
	if k == nil || len(k.words) == 0 {
		return false
	}
	found := false
	k.scan(lower, func(int32) bool {
		found = true
		return false
	})
	return found
}

// Hits returns the distinct keywords found in lower, in order of first match
func (k *keywordSet) Hits(lower string) []string {
	if k == nil || len(k.words) == 0 {
		return nil
	}
	var out []string
	seen := make(map[int32]struct{}, 4)
	k.scan(lower, func(id int32) bool {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, k.words[id])
		}
		return true
	})
	return out
}
