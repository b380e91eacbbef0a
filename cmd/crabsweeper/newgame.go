package main

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/TheBlckbird/crabsweeper/internal/mines"
)

type newGameDTO struct {
	Width     int  `schema:"width,required"`
	Height    int  `schema:"height,required"`
	MineCount int  `schema:"mine_count,required"`
	SafeStart bool `schema:"safe_start"`
}

// parseGameParams accepts either a query string
// ("width=9&height=9&mine_count=10&safe_start=1") or the compact
// "9:9:10:1" form.
func parseGameParams(s string) (mines.GameParams, error) {
	if !strings.Contains(s, "=") {
		p, err := mines.ParseSeed(s)
		if err != nil {
			return mines.GameParams{}, err
		}
		return *p, nil
	}
	src, err := url.ParseQuery(s)
	if err != nil {
		return mines.GameParams{}, err
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto newGameDTO
	if err := dec.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}
	return mines.GameParams(dto), nil
}
