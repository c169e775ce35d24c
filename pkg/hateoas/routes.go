package hateoas

import (
	"fmt"
	"strconv"
	"strings"
)

// ResourceName identifies a linkable resource collection.
type ResourceName string

const (
	ResourceUsers      ResourceName = "users"
	ResourceSkills     ResourceName = "skills"
	ResourceEducations ResourceName = "educations"
	ResourceCourses    ResourceName = "courses"
)

// Action identifies an operation a route template exists for.
type Action string

const (
	ActionGetAll    Action = "get_all"
	ActionGetByUser Action = "get_by_user"
	ActionGetByID   Action = "get_by_id"
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
)

// Version returns the fixed API version a resource is served under.
// Nested links inside a composite representation always use this
// constant, never the version of the enclosing request.
func Version(r ResourceName) string {
	switch r {
	case ResourceUsers:
		return "1"
	case ResourceSkills:
		return "2"
	case ResourceEducations:
		return "3"
	case ResourceCourses:
		return "4"
	}
	return ""
}

// Params carries the values a route template may interpolate.
type Params struct {
	ID         int64
	UserID     int64
	PageNumber int
	PageSize   int
}

// routes is the typed routing table: (resource, action) -> template.
// Placeholders: {version}, {id}, {userId}.
var routes = map[ResourceName]map[Action]string{}

func init() {
	for _, r := range []ResourceName{ResourceUsers, ResourceSkills, ResourceEducations, ResourceCourses} {
		base := "/api/v{version}/" + string(r)
		routes[r] = map[Action]string{
			ActionGetAll:    base,
			ActionGetByUser: base + "/user/{userId}",
			ActionGetByID:   base + "/{id}",
			ActionCreate:    base,
			ActionUpdate:    base + "/{id}",
			ActionDelete:    base + "/{id}",
		}
	}
}

// ResolveRoute renders the template registered for (action, resource)
// under the given version. List actions carry page metadata as query
// parameters. A nil result means the route could not be resolved and
// must surface as a null href.
func ResolveRoute(action Action, resource ResourceName, version string, p Params) *string {
	byAction, ok := routes[resource]
	if !ok {
		return nil
	}
	template, ok := byAction[action]
	if !ok {
		return nil
	}

	href := strings.NewReplacer(
		"{version}", version,
		"{id}", strconv.FormatInt(p.ID, 10),
		"{userId}", strconv.FormatInt(p.UserID, 10),
	).Replace(template)

	if action == ActionGetAll || action == ActionGetByUser {
		href += fmt.Sprintf("?pageNumber=%d&pageSize=%d", p.PageNumber, p.PageSize)
	}
	return &href
}

// ItemLinks attaches the self/update/delete triple a single resource
// always carries, addressed at its own versioned route.
func ItemLinks(res *Resource, name ResourceName, version string, id int64) {
	res.AddLink("self", ResolveRoute(ActionGetByID, name, version, Params{ID: id}), "GET")
	res.AddLink("update", ResolveRoute(ActionUpdate, name, version, Params{ID: id}), "PUT")
	res.AddLink("delete", ResolveRoute(ActionDelete, name, version, Params{ID: id}), "DELETE")
}

// CollectionLinks attaches the self/next/prev triple of a paged envelope.
// next has a null href on or past the last page; prev has a null href on
// the first.
func CollectionLinks(res *Resource, action Action, name ResourceName, version string, p Params, totalPages int) {
	res.AddLink("self", ResolveRoute(action, name, version, p), "GET")

	var next *string
	if p.PageNumber < totalPages {
		nextParams := p
		nextParams.PageNumber = p.PageNumber + 1
		next = ResolveRoute(action, name, version, nextParams)
	}
	res.AddLink("next", next, "GET")

	var prev *string
	if p.PageNumber > 1 {
		prevParams := p
		prevParams.PageNumber = p.PageNumber - 1
		prev = ResolveRoute(action, name, version, prevParams)
	}
	res.AddLink("prev", prev, "GET")
}
