package chain

// GenesisPreviousHash is the previous_hash the node assigns to block 0.
const GenesisPreviousHash = "0"

// Response mirrors the payload returned by /api/chain.
type Response struct {
	Chain Chain `json:"chain"`
}

// Chain is the ordered block sequence, index ascending.
type Chain []Block

// Block describes a single mined block in transport-friendly form.
// Fields the viewer does not display (transactions) are ignored on decode.
type Block struct {
	Index        uint64 `json:"index"`
	Timestamp    int64  `json:"timestamp"`
	PreviousHash string `json:"previous_hash"`
	Hash         string `json:"hash"`
	Proof        Proof  `json:"proof"`
}

// Proof is the solution submitted by the block's author.
type Proof struct {
	ChallengeID string `json:"challenge_id,omitempty"`
	Language    string `json:"language"`
	Author      string `json:"author"`
	Code        string `json:"code"`
}

// IsGenesis reports whether b is the first block of the chain.
func (b Block) IsGenesis() bool {
	return b.Index == 0
}

// Tip returns the last block and true, or false for an empty chain.
func (c Chain) Tip() (Block, bool) {
	if len(c) == 0 {
		return Block{}, false
	}
	return c[len(c)-1], true
}

// Clone returns an independent copy of the chain.
func (c Chain) Clone() Chain {
	if len(c) == 0 {
		return nil
	}
	dup := make(Chain, len(c))
	copy(dup, c)
	return dup
}
