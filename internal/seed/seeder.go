package seed

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shauncritzer/memoir/internal/course"
	"github.com/shauncritzer/memoir/internal/logger"
)

// Open connects to the database described by cfg and verifies the
// connection. Failures are *Error with Kind ConnectionError.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, &Error{Kind: ConnectionError, Op: "configure", Err: err}
	}
	return OpenDialector(ctx, dialector)
}

// OpenDialector opens a gorm session on an existing dialector.
func OpenDialector(ctx context.Context, dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, &Error{Kind: ConnectionError, Op: "connect", Err: err}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, &Error{Kind: ConnectionError, Op: "connect", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, &Error{Kind: ConnectionError, Op: "ping", Err: err}
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Result summarizes a committed seeding run.
type Result struct {
	ProductID    string
	Deleted      int
	Inserted     int
	TotalMinutes int
	Lessons      []course.Lesson // As inserted, with database IDs
}

// Seeder replaces the lessons of one product.
type Seeder struct {
	db  *gorm.DB
	log *logger.Logger
}

// New creates a Seeder. A nil log discards output.
func New(db *gorm.DB, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.NewNop()
	}
	return &Seeder{db: db, log: log}
}

// Seed deletes every lesson of productID and inserts lessons in day order,
// all in one transaction. lessons is not modified.
func (s *Seeder) Seed(ctx context.Context, productID string, lessons []course.Lesson) (Result, error) {
	rows, err := prepare(productID, lessons)
	if err != nil {
		return Result{}, &Error{Kind: InsertError, Op: "validate", Err: err}
	}

	res := Result{ProductID: productID}
	started := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		started = true

		var count int64
		if err := tx.Model(&course.Lesson{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
			return &Error{Kind: DeleteError, Op: "count", Err: err}
		}
		if count > 0 {
			s.log.Info("Deleting existing lessons", "product", productID, "count", count)
			del := tx.Where("product_id = ?", productID).Delete(&course.Lesson{})
			if del.Error != nil {
				return &Error{Kind: DeleteError, Op: "delete", Err: del.Error}
			}
			res.Deleted = int(del.RowsAffected)
		}

		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return &Error{Kind: InsertError, Op: fmt.Sprintf("insert day %d", rows[i].DayNumber), Err: err}
			}
			s.log.Debug("Inserted lesson", "day", rows[i].DayNumber, "id", rows[i].ID)
		}
		return nil
	})

	if err != nil {
		var se *Error
		switch {
		case errors.As(err, &se):
			return Result{}, err
		case !started:
			return Result{}, &Error{Kind: ConnectionError, Op: "begin", Err: err}
		default:
			return Result{}, &Error{Kind: InsertError, Op: "commit", Err: err}
		}
	}

	res.Inserted = len(rows)
	res.TotalMinutes = course.TotalMinutes(rows)
	res.Lessons = rows
	return res, nil
}

// prepare copies lessons, stamps productID, sorts by day and rejects
// records that would break one-row-per-day.
func prepare(productID string, lessons []course.Lesson) ([]course.Lesson, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: empty product ID", ErrInvalidLesson)
	}
	rows := make([]course.Lesson, len(lessons))
	copy(rows, lessons)

	seen := make(map[int]bool, len(rows))
	for i := range rows {
		l := &rows[i]
		if l.DayNumber < 1 {
			return nil, fmt.Errorf("%w: day number %d", ErrInvalidLesson, l.DayNumber)
		}
		if l.DurationMinutes < 1 {
			return nil, fmt.Errorf("%w: day %d has duration %d", ErrInvalidLesson, l.DayNumber, l.DurationMinutes)
		}
		if seen[l.DayNumber] {
			return nil, fmt.Errorf("%w: day %d appears twice", ErrInvalidLesson, l.DayNumber)
		}
		seen[l.DayNumber] = true
		l.ID = 0
		l.ProductID = productID
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].DayNumber < rows[j].DayNumber })
	return rows, nil
}
