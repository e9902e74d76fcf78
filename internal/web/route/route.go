package route

import "strings"

// Route is one entry of the front end's route table.
type Route int

const (
	NotFound Route = iota
	Home
	Blogs
	Contact
)

// All lists the routes reachable from the menu, in menu order.
func All() []Route {
	return []Route{Home, Blogs, Contact}
}

func (r Route) Path() string {
	switch r {
	case Home:
		return "/"
	case Blogs:
		return "/blogs"
	case Contact:
		return "/contact"
	case NotFound:
		return ""
	}
	return ""
}

func (r Route) Label() string {
	switch r {
	case Home:
		return "Home"
	case Blogs:
		return "Blogs"
	case Contact:
		return "Contact"
	case NotFound:
		return "Not Found"
	}
	return ""
}

func (r Route) String() string {
	return r.Label()
}

// Match resolves a request path. A single trailing slash is ignored
// except on the root.
func Match(path string) Route {
	if path == Home.Path() {
		return Home
	}
	path = strings.TrimSuffix(path, "/")
	for _, r := range All() {
		if r != Home && r.Path() == path {
			return r
		}
	}
	return NotFound
}
