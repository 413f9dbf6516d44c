// Package chain provides the HTTP client and wire types for the chain node API.
//
// # Overview
//
// The node exposes a single read-only endpoint, GET /api/chain, returning
//
//	{"chain": [Block, ...]}
//
// ordered by index ascending. Each block links to its predecessor through
// previous_hash; the genesis block carries the sentinel "0".
//
// # Client Usage
//
//	client, err := chain.NewClient("http://127.0.0.1:3000/api/chain")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	blocks, err := client.FetchChain(ctx)
//	if err != nil {
//		log.Printf("chain fetch failed: %v", err)
//	}
//
// NewClient accepts a full URL or a bare host:port; in the latter case the
// default /api/chain path is used.
//
// # Error Handling
//
// FetchChain wraps every failure in one of two sentinels:
//
//   - ErrConnection: transport failure or any non-2xx status
//   - ErrMalformedResponse: body is not JSON or has no "chain" field
//
// Use errors.Is to classify. The viewer treats both the same way.
//
// # Testing
//
// Code that polls the node should depend on the Fetcher interface rather than
// *Client so tests can substitute canned chains.
package chain
