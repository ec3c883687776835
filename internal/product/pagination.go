package product

// NormalizePage clamps page numbers below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func NewPageInfo(count, page, pageSize int) PageInfo {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (count + pageSize - 1) / pageSize
	}
	return PageInfo{
		PageNumber:  page,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

func offsetFor(page, pageSize int) int {
	return (page - 1) * pageSize
}
