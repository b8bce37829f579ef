package report

// Paginate recorta una página [offset, offset+limit) de rows.
// Offsets fuera de rango devuelven página vacía; limit<=0 significa "sin límite".
func Paginate[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end]
}
