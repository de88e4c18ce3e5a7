// Package model defines the record types stored by each demo app.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a bank account keyed by holder name.
type Account struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Balance float64            `bson:"balance"`
}

// Author is a blog author referenced by posts.
type Author struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// Comment is embedded in a post, append-only in insertion order.
type Comment struct {
	Commenter string    `bson:"commenter"`
	Text      string    `bson:"comment"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Post is a blog post referencing its author by id and embedding comments.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	AuthorID  primitive.ObjectID `bson:"authorId"`
	CreatedAt time.Time          `bson:"createdAt"`
	Comments  []Comment          `bson:"comments"`
}

// PostWithAuthor is the $lookup-enriched shape of a post. The author slice
// holds zero or one entries depending on whether the reference resolved.
type PostWithAuthor struct {
	Post   `bson:",inline"`
	Author []Author `bson:"author"`
}

// AuthorName returns the joined author's name, or "Unknown" for a dangling reference.
func (p PostWithAuthor) AuthorName() string {
	if len(p.Author) == 0 {
		return "Unknown"
	}
	return p.Author[0].Name
}

// Contact is an address-book entry; name is unique (enforced by index).
type Contact struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Phone string             `bson:"phone"`
	Email string             `bson:"email"`
}

// Order is a single purchase used by the analytics reports.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Customer string             `bson:"customer"`
	Product  string             `bson:"product"`
	Quantity int                `bson:"quantity"`
	Date     time.Time          `bson:"date"`
}

// ProductSales is one row of the sales-by-product aggregation.
type ProductSales struct {
	Product   string `bson:"_id"`
	TotalSold int64  `bson:"totalSold"`
}

// CustomerTotal is one row of the top-customers aggregation.
type CustomerTotal struct {
	Customer     string `bson:"_id"`
	TotalOrdered int64  `bson:"totalOrdered"`
}

// Product is an inventory item; stock never goes below zero.
type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Stock int                `bson:"stock"`
}

// Book is a library item with a borrowed flag.
type Book struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Author   string             `bson:"author"`
	Borrowed bool               `bson:"borrowed"`
}

// NoteUser is a registered notes-app user; username is unique (enforced by index).
type NoteUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

// Note belongs to one owner and may be shared with other usernames.
// SharedWith never holds duplicates ($addToSet).
type Note struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Owner      string             `bson:"owner"`
	Text       string             `bson:"note"`
	SharedWith []string           `bson:"sharedWith"`
}

// SocialUser carries the friend graph: accepted friends plus pending requests.
type SocialUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Friends  []string           `bson:"friends"`
	Requests []string           `bson:"requests"`
}

// Status is a social-network status update.
type Status struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Text     string             `bson:"status"`
	Date     time.Time          `bson:"date"`
}

// Table is a restaurant table identified by its number.
type Table struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Number int                `bson:"number"`
}

// Reservation books a table for one (date, time) slot. The slot triple is
// unique (enforced by index); Code is the confirmation code shown to the customer.
type Reservation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Customer    string             `bson:"customer"`
	TableNumber int                `bson:"tableNumber"`
	Date        string             `bson:"date"`
	Time        string             `bson:"time"`
	Code        string             `bson:"code"`
}

// Student is referenced by grades via its id.
type Student struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// Grade is one subject grade for a student.
type Grade struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StudentID primitive.ObjectID `bson:"studentId"`
	Subject   string             `bson:"subject"`
	Value     string             `bson:"grade"`
}

// Task statuses.
const (
	TaskPending = "pending"
	TaskDone    = "done"
)

// TaskStatuses lists the allowed task status values.
var TaskStatuses = []string{TaskPending, TaskDone}

// Task is a to-do item with a two-state status.
type Task struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Status string             `bson:"status"`
}
