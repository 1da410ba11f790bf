package handlers

import (
	"hash/maphash"
	"math/rand/v2"
	"net/url"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// SessionParams are read from the query string of a connect request.
type SessionParams struct {
	Seed *uint64 `schema:"seed"`
}

func ParseSessionParams(query url.Values) (SessionParams, error) {
	var params SessionParams
	err := decoder.Decode(&params, query)
	return params, err
}

// Rand returns a generator seeded with Seed when present, or from runtime
// entropy otherwise.
func (p SessionParams) Rand() *rand.Rand {
	if p.Seed != nil {
		return rand.New(rand.NewPCG(*p.Seed, *p.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
