package service

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage clamps page and pageSize into their allowed ranges.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// totalPages is the ceiling division of total by pageSize.
func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
