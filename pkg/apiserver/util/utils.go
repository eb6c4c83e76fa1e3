package utils

import (
	"strconv"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
)

// nolint
func DataPatination[T any](origin []T, page, pageSize int32) []T {
	if pageSize == -1 {
		return origin
	}

	if page < 1 {
		return make([]T, 0)
	}

	total := int32(len(origin))
	start := (page - 1) * pageSize
	end := page * pageSize

	if start > total {
		return make([]T, 0)
	}

	if end > total {
		end = total
	}

	return origin[start:end]
}

// Paginate describes the page of a list with total items
func Paginate(total int, page, pageSize int32) *hwameistorapi.Pagination {
	p := &hwameistorapi.Pagination{Total: uint32(total), Page: page, PageSize: pageSize}
	switch {
	case pageSize == -1:
		p.Pages = 1
	case pageSize > 0:
		p.Pages = int32((total + int(pageSize) - 1) / int(pageSize))
	}
	return p
}

// ParsePage reads page and pageSize query values. Missing values return
// every item.
func ParsePage(page, pageSize string) (int32, int32) {
	p, err := strconv.ParseInt(page, 10, 32)
	if err != nil {
		p = 1
	}
	ps, err := strconv.ParseInt(pageSize, 10, 32)
	if err != nil || ps == 0 {
		ps = -1
	}
	return int32(p), int32(ps)
}
