package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/store"
)

const (
	vehiclesCollection           = "vehicles"
	fuelRecordsCollection        = "fuelRecords"
	maintenanceRecordsCollection = "maintenanceRecords"
	fuelPricesCollection         = "fuelPrices"
)

// Store is the document store behind the dashboard: one collection per
// entity, queried by field and date range.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

type Settings struct {
	URI      string
	Database string
}

// NewStore connects to Mongo and verifies the connection with a ping.
func NewStore(ctx context.Context, settings Settings) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(settings.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &Store{
		client: client,
		db:     client.Database(settings.Database),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Vehicles lists the fleet, ordered by registration number.
func (s *Store) Vehicles(ctx context.Context) ([]store.Vehicle, error) {
	cursor, err := s.db.Collection(vehiclesCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "regNumber", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}

	var vehicles []store.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *Store) AddVehicle(ctx context.Context, v store.Vehicle) error {
	if _, err := s.db.Collection(vehiclesCollection).InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}

// FuelRecords lists fuel documents in the inclusive [from, to] window,
// newest first. A zero vehicleID matches all vehicles.
func (s *Store) FuelRecords(ctx context.Context, vehicleID string, from, to time.Time) ([]store.FuelRecord, error) {
	cursor, err := s.db.Collection(fuelRecordsCollection).Find(
		ctx,
		recordFilter(vehicleID, from, to),
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fuel records: %w", err)
	}

	var records []store.FuelRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode fuel records: %w", err)
	}
	return records, nil
}

func (s *Store) AddFuelRecord(ctx context.Context, r store.FuelRecord) error {
	if _, err := s.db.Collection(fuelRecordsCollection).InsertOne(ctx, r); err != nil {
		return fmt.Errorf("failed to insert fuel record: %w", err)
	}
	return nil
}

// MaintenanceRecords lists maintenance documents in the inclusive [from, to]
// window, newest first. A zero vehicleID matches all vehicles.
func (s *Store) MaintenanceRecords(ctx context.Context, vehicleID string, from, to time.Time) ([]store.MaintenanceRecord, error) {
	cursor, err := s.db.Collection(maintenanceRecordsCollection).Find(
		ctx,
		recordFilter(vehicleID, from, to),
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance records: %w", err)
	}

	var records []store.MaintenanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode maintenance records: %w", err)
	}
	return records, nil
}

func (s *Store) AddMaintenanceRecord(ctx context.Context, r store.MaintenanceRecord) error {
	if _, err := s.db.Collection(maintenanceRecordsCollection).InsertOne(ctx, r); err != nil {
		return fmt.Errorf("failed to insert maintenance record: %w", err)
	}
	return nil
}

// CurrentFuelPrice returns the latest price set for a grade.
func (s *Store) CurrentFuelPrice(ctx context.Context, grade string) (store.FuelPrice, error) {
	var price store.FuelPrice
	err := s.db.Collection(fuelPricesCollection).FindOne(
		ctx,
		bson.M{"grade": grade},
		options.FindOne().SetSort(bson.D{{Key: "effectiveFrom", Value: -1}}),
	).Decode(&price)
	if err != nil {
		return store.FuelPrice{}, fmt.Errorf("failed to load current fuel price: %w", err)
	}
	return price, nil
}

// FuelPriceHistory lists all prices for a grade, newest first.
func (s *Store) FuelPriceHistory(ctx context.Context, grade string) ([]store.FuelPrice, error) {
	cursor, err := s.db.Collection(fuelPricesCollection).Find(
		ctx,
		bson.M{"grade": grade},
		options.Find().SetSort(bson.D{{Key: "effectiveFrom", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fuel price history: %w", err)
	}

	var prices []store.FuelPrice
	if err := cursor.All(ctx, &prices); err != nil {
		return nil, fmt.Errorf("failed to decode fuel prices: %w", err)
	}
	return prices, nil
}

func (s *Store) AddFuelPrice(ctx context.Context, p store.FuelPrice) error {
	if _, err := s.db.Collection(fuelPricesCollection).InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert fuel price: %w", err)
	}
	return nil
}

func recordFilter(vehicleID string, from, to time.Time) bson.M {
	filter := bson.M{
		"date": bson.M{"$gte": from, "$lte": to},
	}
	if vehicleID != "" {
		filter["vehicleId"] = vehicleID
	}
	return filter
}
