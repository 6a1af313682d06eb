package storage

const defaultPerPage = 10

// pageBounds returns the [start, end) slice bounds of a 1-based page.
// start >= total means the page is past the end.
func pageBounds(page, perPage, total int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	// compared before multiplying so a huge page cannot overflow
	if page-1 > total/perPage {
		return total, total
	}

	start := (page - 1) * perPage
	end := total
	if perPage < total-start {
		end = start + perPage
	}

	return start, end
}
