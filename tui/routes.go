package tui

import (
	"net/url"
	"strings"
)

type pageKind int

const (
	pageHome pageKind = iota
	pageLogin
	pageMovies
	pageMovieDetail
	pageShow
	pageProfile
)

const (
	PathHome    = "/"
	PathLogin   = "/login"
	PathMovies  = "/movies"
	PathProfile = "/profile"
)

// Route is a parsed navigation target.
type Route struct {
	Page  pageKind
	Param string
}

// ParseRoute maps a path to a page. Unknown paths resolve to home.
func ParseRoute(path string) Route {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		return Route{Page: pageHome}
	}
	param := ""
	if len(segments) == 2 {
		if p, err := url.PathUnescape(segments[1]); err == nil {
			param = p
		}
	}
	switch {
	case len(segments) == 1 && segments[0] == "login":
		return Route{Page: pageLogin}
	case len(segments) == 1 && segments[0] == "movies":
		return Route{Page: pageMovies}
	case len(segments) == 1 && segments[0] == "profile":
		return Route{Page: pageProfile}
	case len(segments) == 2 && segments[0] == "movies" && param != "":
		return Route{Page: pageMovieDetail, Param: param}
	case len(segments) == 2 && segments[0] == "show" && param != "":
		return Route{Page: pageShow, Param: param}
	}
	return Route{Page: pageHome}
}

func (r Route) Path() string {
	switch r.Page {
	case pageLogin:
		return PathLogin
	case pageMovies:
		return PathMovies
	case pageProfile:
		return PathProfile
	case pageMovieDetail:
		return PathMovies + "/" + url.PathEscape(r.Param)
	case pageShow:
		return "/show/" + url.PathEscape(r.Param)
	default:
		return PathHome
	}
}

func MoviePath(imdbID string) string {
	return Route{Page: pageMovieDetail, Param: imdbID}.Path()
}

func ShowPath(showID string) string {
	return Route{Page: pageShow, Param: showID}.Path()
}
