package service

import "github.com/oakpress/storefront/internal/model"

// PreorderRow is the normalized projection of a stored preorder: the id is
// numeric even when the ledger file stored it as a string, and the optional
// fields keep explicit nulls.
type PreorderRow struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Message     *string `json:"message"`
	ProductID   *string `json:"productId"`
	ProductName *string `json:"productName"`
	CreatedAt   string  `json:"created_at"`
}

// AdminPreorderItem is the projection consumed by the admin UI.
type AdminPreorderItem struct {
	Title     string  `json:"title"`
	User      string  `json:"user"`
	Date      string  `json:"date"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	ProductID *string `json:"productId"`
}

// AdminPreorderView bundles both projections of a single ledger read, so
// they cannot drift apart between queries.
type AdminPreorderView struct {
	TotalPreorders int                 `json:"totalPreorders"`
	Items          []AdminPreorderItem `json:"items"`
	Rows           []PreorderRow       `json:"-"`
}

// NormalizePreorders converts stored ledger records into normalized rows.
func NormalizePreorders(preorders []model.Preorder) []PreorderRow {
	rows := make([]PreorderRow, 0, len(preorders))
	for _, p := range preorders {
		rows = append(rows, PreorderRow{
			ID:          int64(p.ID),
			Name:        p.Name,
			Email:       p.Email,
			Message:     p.Message,
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			CreatedAt:   p.CreatedAt,
		})
	}
	return rows
}

// BuildAdminPreorderView derives both admin projections from one set of
// ledger records. Pure transformation, no I/O.
func BuildAdminPreorderView(preorders []model.Preorder) AdminPreorderView {
	rows := NormalizePreorders(preorders)

	items := make([]AdminPreorderItem, 0, len(rows))
	for _, row := range rows {
		title := "Unknown Product"
		if row.ProductName != nil && *row.ProductName != "" {
			title = *row.ProductName
		}

		user := "Anonymous"
		switch {
		case row.Name != "":
			user = row.Name
		case row.Email != "":
			user = row.Email
		}

		message := ""
		if row.Message != nil {
			message = *row.Message
		}

		items = append(items, AdminPreorderItem{
			Title:     title,
			User:      user,
			Date:      row.CreatedAt,
			Email:     row.Email,
			Message:   message,
			ProductID: row.ProductID,
		})
	}

	return AdminPreorderView{
		TotalPreorders: len(rows),
		Items:          items,
		Rows:           rows,
	}
}
