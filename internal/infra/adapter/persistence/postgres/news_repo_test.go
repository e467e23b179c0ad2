package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"postforge/internal/domain/entity"
	pg "postforge/internal/infra/adapter/persistence/postgres"
)

func itemRows(items ...entity.NewsItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "summary", "published_date", "source", "source_link", "ingested_at",
	})
	for _, item := range items {
		rows.AddRow(item.ID, item.Title, item.Summary, item.PublishedDate,
			item.Source, item.SourceLink, item.IngestedAt)
	}
	return rows
}

func TestNewsRepo_Upsert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	item := entity.NewsItem{
		ID:            "news-1",
		Title:         "EV fleet milestone",
		Summary:       "A large fleet went fully electric.",
		PublishedDate: "2025-08-01T09:00:00Z",
		Source:        "EV Wire",
		SourceLink:    "https://example.com/milestone",
		IngestedAt:    "2025-08-01T10:00:00Z",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_items")).
		WithArgs(item.ID, item.Title, item.Summary, item.PublishedDate,
			item.Source, item.SourceLink, item.IngestedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewNewsRepo(db)
	if err := repo.Upsert(context.Background(), item); err != nil {
		t.Fatalf("Upsert err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewsRepo_Upsert_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_items")).
		WillReturnError(errors.New("connection reset"))

	repo := pg.NewNewsRepo(db)
	if err := repo.Upsert(context.Background(), entity.NewsItem{ID: "x"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewsRepo_Latest(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := []entity.NewsItem{
		{ID: "b", Title: "newer", PublishedDate: "2025-08-02T00:00:00Z"},
		{ID: "a", Title: "older", PublishedDate: "2025-08-01T00:00:00Z"},
	}

	mock.ExpectQuery("FROM news_items").
		WithArgs(10).
		WillReturnRows(itemRows(want...))

	repo := pg.NewNewsRepo(db)
	got, err := repo.Latest(context.Background(), 10)
	if err != nil {
		t.Fatalf("Latest err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewsRepo_Latest_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM news_items").
		WithArgs(10).
		WillReturnRows(itemRows())

	repo := pg.NewNewsRepo(db)
	got, err := repo.Latest(context.Background(), 10)
	if err != nil {
		t.Fatalf("Latest err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
