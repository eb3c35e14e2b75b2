package models

// Book represents one catalog entry. The catalog is static and read-only;
// prices are whole UGX amounts.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	CoverImage  string `json:"cover_image"`
	PDFLink     string `json:"pdf_link"`
	Category    string `json:"category"`
}

// FavoriteDB represents a favorites row in the database.
type FavoriteDB struct {
	UserID string `json:"user_id" db:"user_id"`
	BookID int64  `json:"book_id" db:"book_id"`
}
