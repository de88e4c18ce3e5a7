package model

import "testing"

func TestPostWithAuthor_AuthorName(t *testing.T) {
	t.Parallel()

	joined := PostWithAuthor{Author: []Author{{Name: "ann"}}}
	if got := joined.AuthorName(); got != "ann" {
		t.Fatalf("want ann, got %q", got)
	}

	orphan := PostWithAuthor{}
	if got := orphan.AuthorName(); got != "Unknown" {
		t.Fatalf("want Unknown fallback, got %q", got)
	}
}
