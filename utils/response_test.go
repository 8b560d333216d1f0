// File: /utils/response_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse_FirstPage(t *testing.T) {
	// 10 events, per_page=6, page=1
	resp := NewPaginatedResponse([]string{"a", "b", "c", "d", "e", "f"}, 1, 6, 6, 10)

	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 2, resp.LastPage)
	assert.Equal(t, 6, resp.PerPage)
	assert.Equal(t, int64(10), resp.Total)
	assert.Equal(t, 1, resp.From)
	assert.Equal(t, 6, resp.To)
}

func TestNewPaginatedResponse_LastPartialPage(t *testing.T) {
	resp := NewPaginatedResponse([]string{"g", "h", "i", "j"}, 2, 6, 4, 10)

	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 2, resp.LastPage)
	assert.Equal(t, 7, resp.From)
	assert.Equal(t, 10, resp.To)
}

func TestNewPaginatedResponse_EmptyResult(t *testing.T) {
	resp := NewPaginatedResponse([]string{}, 1, 12, 0, 0)

	assert.Equal(t, 0, resp.LastPage)
	assert.Equal(t, int64(0), resp.Total)
	assert.Equal(t, 0, resp.From)
	assert.Equal(t, 0, resp.To)
}

func TestNewPaginatedResponse_PagePastEnd(t *testing.T) {
	// Page beyond last_page is empty, not an error
	resp := NewPaginatedResponse([]string{}, 5, 6, 0, 10)

	assert.Equal(t, 5, resp.CurrentPage)
	assert.Equal(t, 2, resp.LastPage)
	assert.Equal(t, 0, resp.From)
	assert.Equal(t, 0, resp.To)
}

func TestNewPaginatedResponse_PageSizesSumToTotal(t *testing.T) {
	const total, perPage = 23, 7
	lastPage := (total + perPage - 1) / perPage

	sum := 0
	for page := 1; page <= lastPage; page++ {
		count := perPage
		if page == lastPage {
			count = total - (page-1)*perPage
		}
		resp := NewPaginatedResponse(nil, page, perPage, count, int64(total))
		if count > 0 {
			sum += resp.To - resp.From + 1
		}
	}

	assert.Equal(t, total, sum)
}
