package hateoas_test

import (
	"testing"

	"go-reskilling-backend/pkg/hateoas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionIsFixedPerResource(t *testing.T) {
	assert.Equal(t, "1", hateoas.Version(hateoas.ResourceUsers))
	assert.Equal(t, "2", hateoas.Version(hateoas.ResourceSkills))
	assert.Equal(t, "3", hateoas.Version(hateoas.ResourceEducations))
	assert.Equal(t, "4", hateoas.Version(hateoas.ResourceCourses))
}

func TestResolveRoute(t *testing.T) {
	href := hateoas.ResolveRoute(hateoas.ActionGetByID, hateoas.ResourceUsers, "1", hateoas.Params{ID: 42})
	require.NotNil(t, href)
	assert.Equal(t, "/api/v1/users/42", *href)

	href = hateoas.ResolveRoute(hateoas.ActionGetAll, hateoas.ResourceSkills, "2", hateoas.Params{PageNumber: 3, PageSize: 10})
	require.NotNil(t, href)
	assert.Equal(t, "/api/v2/skills?pageNumber=3&pageSize=10", *href)

	href = hateoas.ResolveRoute(hateoas.ActionGetByUser, hateoas.ResourceCourses, "4", hateoas.Params{UserID: 7, PageNumber: 1, PageSize: 10})
	require.NotNil(t, href)
	assert.Equal(t, "/api/v4/courses/user/7?pageNumber=1&pageSize=10", *href)
}

func TestResolveRouteUnknownIsNil(t *testing.T) {
	assert.Nil(t, hateoas.ResolveRoute(hateoas.ActionGetByID, hateoas.ResourceName("widgets"), "1", hateoas.Params{ID: 1}))
	assert.Nil(t, hateoas.ResolveRoute(hateoas.Action("purge"), hateoas.ResourceUsers, "1", hateoas.Params{ID: 1}))
}

func TestItemLinks(t *testing.T) {
	var res hateoas.Resource
	hateoas.ItemLinks(&res, hateoas.ResourceSkills, "2", 5)

	require.Len(t, res.Links, 3)
	assert.Equal(t, "self", res.Links[0].Rel)
	assert.Equal(t, "GET", res.Links[0].Method)
	assert.Equal(t, "update", res.Links[1].Rel)
	assert.Equal(t, "PUT", res.Links[1].Method)
	assert.Equal(t, "delete", res.Links[2].Rel)
	assert.Equal(t, "DELETE", res.Links[2].Method)
	for _, link := range res.Links {
		require.NotNil(t, link.Href)
		assert.Equal(t, "/api/v2/skills/5", *link.Href)
	}
}

func TestCollectionLinkBoundaries(t *testing.T) {
	params := hateoas.Params{PageNumber: 1, PageSize: 10}

	// Single page: neither neighbor exists, both still emitted.
	var single hateoas.Resource
	hateoas.CollectionLinks(&single, hateoas.ActionGetAll, hateoas.ResourceUsers, "1", params, 1)
	require.Len(t, single.Links, 3)
	assert.NotNil(t, single.Links[0].Href)
	assert.Nil(t, single.Links[1].Href, "next must be null on the last page")
	assert.Nil(t, single.Links[2].Href, "prev must be null on page 1")

	// Middle page: both neighbors resolve.
	var middle hateoas.Resource
	hateoas.CollectionLinks(&middle, hateoas.ActionGetAll, hateoas.ResourceUsers, "1", hateoas.Params{PageNumber: 2, PageSize: 10}, 3)
	require.NotNil(t, middle.Links[1].Href)
	assert.Equal(t, "/api/v1/users?pageNumber=3&pageSize=10", *middle.Links[1].Href)
	require.NotNil(t, middle.Links[2].Href)
	assert.Equal(t, "/api/v1/users?pageNumber=1&pageSize=10", *middle.Links[2].Href)

	// Past the end still behaves: next null, prev resolves.
	var past hateoas.Resource
	hateoas.CollectionLinks(&past, hateoas.ActionGetAll, hateoas.ResourceUsers, "1", hateoas.Params{PageNumber: 9, PageSize: 10}, 3)
	assert.Nil(t, past.Links[1].Href)
	assert.NotNil(t, past.Links[2].Href)
}
