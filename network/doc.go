// Package network serves the hand scorer over HTTP.
//
// # Routes
//
// POST /api/score takes {"cards": ["AS", "AH", "10D", "10C", "KS"]} and
// returns the category, tie-break and final score of the hand.
//
// POST /api/showdown takes {"hands": [{"name": "...", "cards": [...]}]} and
// scores every hand, reporting invalid ones inline and naming the winners.
//
// GET /health answers OK while the server is up.
//
// # Errors
//
// Malformed bodies are answered with 400, hands that break the card or hand
// rules with 422. Every response carries an X-Request-ID header, which is
// also echoed in error bodies.
//
// # TLS
//
// WithTLS switches the listener to HTTPS. GenerateSelfSignedCert builds a
// certificate good enough for local use.
package network
