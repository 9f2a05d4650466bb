package models

import "time"

// ToDoItem is a free-text studio note that can be ticked off.
type ToDoItem struct {
	ID          string    `bson:"_id" json:"id"`
	Text        string    `bson:"text" json:"text"`
	IsCompleted bool      `bson:"is_completed" json:"is_completed"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Key implements repository.Document.
func (t ToDoItem) Key() string { return t.ID }

// WithKey returns a copy carrying the given storage identifier.
func (t ToDoItem) WithKey(id string) ToDoItem {
	t.ID = id
	return t
}

// EquipmentItem is a piece of studio gear in the inventory.
type EquipmentItem struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Key implements repository.Document.
func (e EquipmentItem) Key() string { return e.ID }

// WithKey returns a copy carrying the given storage identifier.
func (e EquipmentItem) WithKey(id string) EquipmentItem {
	e.ID = id
	return e
}

// GalleryItem is a reference image. Items of the "this Friday" board can be ticked off,
// lifestyle inspiration items never are.
type GalleryItem struct {
	ID          string    `bson:"_id" json:"id"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	IsCompleted bool      `bson:"is_completed" json:"is_completed"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Key implements repository.Document.
func (g GalleryItem) Key() string { return g.ID }

// WithKey returns a copy carrying the given storage identifier.
func (g GalleryItem) WithKey(id string) GalleryItem {
	g.ID = id
	return g
}

// DocumentFileType is the kind of file a company document points to.
type DocumentFileType string

const (
	FilePDF   DocumentFileType = "pdf"
	FileImage DocumentFileType = "image"
)

// DocumentItem is a stored company document (official papers, bank forms, contracts).
type DocumentItem struct {
	ID        string           `bson:"_id" json:"id"`
	Name      string           `bson:"name" json:"name"`
	Category  string           `bson:"category" json:"category"`
	FileURL   string           `bson:"file_url" json:"file_url"`
	FileType  DocumentFileType `bson:"file_type" json:"file_type"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}

// Key implements repository.Document.
func (d DocumentItem) Key() string { return d.ID }

// WithKey returns a copy carrying the given storage identifier.
func (d DocumentItem) WithKey(id string) DocumentItem {
	d.ID = id
	return d
}
