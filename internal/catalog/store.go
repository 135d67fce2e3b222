package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/archaeoscan/fieldmap/pkg/core"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ObjectRecord is the database row for a found object. Seq keeps catalog order.
type ObjectRecord struct {
	Seq          uint   `gorm:"primaryKey;autoIncrement"`
	ObjectID     string `gorm:"uniqueIndex;size:64;not null"`
	Name         string
	Type         string `gorm:"index;size:32"`
	Latitude     float64
	Longitude    float64
	Depth        float64
	Confidence   float64
	Description  string
	DiscoveredAt time.Time
	Properties   datatypes.JSONType[core.Properties]
}

// TableName overrides the default table name.
func (ObjectRecord) TableName() string {
	return "found_objects"
}

func recordFrom(o core.FoundObject) ObjectRecord {
	return ObjectRecord{
		ObjectID:     o.ID,
		Name:         o.Name,
		Type:         string(o.Type),
		Latitude:     o.Latitude,
		Longitude:    o.Longitude,
		Depth:        o.Depth,
		Confidence:   o.Confidence,
		Description:  o.Description,
		DiscoveredAt: o.DiscoveredAt.UTC(),
		Properties:   datatypes.NewJSONType(o.Properties),
	}
}

func (r ObjectRecord) object() core.FoundObject {
	return core.FoundObject{
		ID:           r.ObjectID,
		Name:         r.Name,
		Type:         core.ObjectType(r.Type),
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Depth:        r.Depth,
		Confidence:   r.Confidence,
		Description:  r.Description,
		DiscoveredAt: r.DiscoveredAt.UTC(),
		Properties:   r.Properties.Data(),
	}
}

// Store is a SQLite-backed catalog. It stands in for a survey query service.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// OpenStore opens (creating if needed) the SQLite catalog at path and
// migrates the schema. An empty path opens a private in-memory database.
func OpenStore(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if path == "" {
		dsn = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite catalog: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	if path == "" {
		// every new connection to :memory: would be a separate database
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&ObjectRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	if path == "" {
		log.Debug().Msg("Using in-memory SQLite catalog")
	} else {
		log.Info().Str("path", path).Msg("Using SQLite catalog")
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed inserts objects, replacing rows whose ID already exists.
// Replaced rows keep their original position in the catalog.
func (s *Store) Seed(ctx context.Context, objects []core.FoundObject) error {
	if len(objects) == 0 {
		return nil
	}
	records := make([]ObjectRecord, 0, len(objects))
	for _, o := range objects {
		records = append(records, recordFrom(o))
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "object_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "type", "latitude", "longitude", "depth",
			"confidence", "description", "discovered_at", "properties",
		}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	s.log.Info().Int("count", len(records)).Msg("Seeded catalog")
	return nil
}

// Objects returns every object in catalog order.
func (s *Store) Objects(ctx context.Context) ([]core.FoundObject, error) {
	return s.query(ctx, s.db.WithContext(ctx))
}

// ObjectsOfType returns objects of one type in catalog order.
func (s *Store) ObjectsOfType(ctx context.Context, t core.ObjectType) ([]core.FoundObject, error) {
	return s.query(ctx, s.db.WithContext(ctx).Where("type = ?", string(t)))
}

func (s *Store) query(ctx context.Context, tx *gorm.DB) ([]core.FoundObject, error) {
	var records []ObjectRecord
	if err := tx.Order("seq").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	objects := make([]core.FoundObject, 0, len(records))
	for _, r := range records {
		objects = append(objects, r.object())
	}
	s.log.Debug().Int("count", len(objects)).Msg("Loaded catalog objects")
	return objects, nil
}

// Get returns the object with the given ID.
func (s *Store) Get(ctx context.Context, id string) (core.FoundObject, error) {
	var r ObjectRecord
	err := s.db.WithContext(ctx).Where("object_id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.FoundObject{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return core.FoundObject{}, fmt.Errorf("failed to get object %s: %w", id, err)
	}
	return r.object(), nil
}

// Count returns the number of stored objects.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&ObjectRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count catalog: %w", err)
	}
	return n, nil
}
