package models

import "fmt"

// FilmworkType classifies a catalog entry.
type FilmworkType string

const (
	TypeMovie  FilmworkType = "movie"
	TypeTVShow FilmworkType = "tv_show"
)

var FilmworkTypes = []FilmworkType{TypeMovie, TypeTVShow}

func (t FilmworkType) Valid() bool {
	switch t {
	case TypeMovie, TypeTVShow:
		return true
	}
	return false
}

func ParseFilmworkType(s string) (FilmworkType, error) {
	t := FilmworkType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown film work type %q", s)
	}
	return t, nil
}

// Role is the part a person plays in a film work.
type Role string

const (
	RoleActor    Role = "actor"
	RoleDirector Role = "director"
	RoleWriter   Role = "writer"
)

var Roles = []Role{RoleActor, RoleDirector, RoleWriter}

func (r Role) Valid() bool {
	switch r {
	case RoleActor, RoleDirector, RoleWriter:
		return true
	}
	return false
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
