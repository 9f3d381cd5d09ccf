package content

import (
	"context"
	"fmt"
	"strings"
)

// Location selects where content is read from. A DSN wins over a directory;
// with neither the embedded data is used.
type Location struct {
	Dir string
	DSN string
}

// String describes the location for logs.
func (l Location) String() string {
	switch {
	case strings.TrimSpace(l.DSN) != "":
		return "sqlite:" + strings.TrimSpace(l.DSN)
	case strings.TrimSpace(l.Dir) != "":
		return "dir:" + strings.TrimSpace(l.Dir)
	default:
		return "embedded"
	}
}

// Open loads the content at l into a Store. Database handles are closed
// before returning since the store keeps its own copy.
func (l Location) Open(ctx context.Context) (*Store, error) {
	if dsn := strings.TrimSpace(l.DSN); dsn != "" {
		db, err := OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		store, err := Load(ctx, SQLiteSource{DB: db})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l, err)
		}
		return store, nil
	}
	var source Source = EmbeddedSource()
	if dir := strings.TrimSpace(l.Dir); dir != "" {
		source = DirSource(dir)
	}
	store, err := Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l, err)
	}
	return store, nil
}
