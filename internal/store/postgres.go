package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flightplanner/internal/domain"
)

// Postgres-backed stores. Rows are mapped back into domain entities through
// the reconstitution factories so a corrupt row surfaces as a validation
// error instead of an invalid entity.
type PostgresAircraftStore struct {
	pool *pgxpool.Pool
}

func NewPostgresAircraftStore(pool *pgxpool.Pool) *PostgresAircraftStore {
	return &PostgresAircraftStore{pool: pool}
}

func (s *PostgresAircraftStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, model, cruise_speed_kts, fuel_burn_per_hour_kg, takeoff_fuel_kg FROM aircraft WHERE id = $1`, id)
	aircraft, err := scanAircraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find aircraft by id: %w", err)
	}
	return aircraft, nil
}

func (s *PostgresAircraftStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Aircraft, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, model, cruise_speed_kts, fuel_burn_per_hour_kg, takeoff_fuel_kg FROM aircraft WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find aircraft by ids: %w", err)
	}
	defer rows.Close()
	return collectAircraft(rows)
}

func (s *PostgresAircraftStore) FindByModel(ctx context.Context, model string) (*domain.Aircraft, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, model, cruise_speed_kts, fuel_burn_per_hour_kg, takeoff_fuel_kg FROM aircraft WHERE model = $1`, model)
	aircraft, err := scanAircraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find aircraft by model: %w", err)
	}
	return aircraft, nil
}

func (s *PostgresAircraftStore) FindAll(ctx context.Context) ([]*domain.Aircraft, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, model, cruise_speed_kts, fuel_burn_per_hour_kg, takeoff_fuel_kg FROM aircraft ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("find all aircraft: %w", err)
	}
	defer rows.Close()
	return collectAircraft(rows)
}

func (s *PostgresAircraftStore) Add(ctx context.Context, aircraft *domain.Aircraft) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO aircraft (id, model, cruise_speed_kts, fuel_burn_per_hour_kg, takeoff_fuel_kg) VALUES ($1, $2, $3, $4, $5)`,
		aircraft.ID(), aircraft.Model(), aircraft.CruiseSpeedKts(), aircraft.FuelBurnPerHourKg(), aircraft.TakeoffFuelKg())
	if err != nil {
		return fmt.Errorf("add aircraft: %w", err)
	}
	return nil
}

func (s *PostgresAircraftStore) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE aircraft SET model = $2, cruise_speed_kts = $3, fuel_burn_per_hour_kg = $4, takeoff_fuel_kg = $5 WHERE id = $1`,
		aircraft.ID(), aircraft.Model(), aircraft.CruiseSpeedKts(), aircraft.FuelBurnPerHourKg(), aircraft.TakeoffFuelKg())
	if err != nil {
		return fmt.Errorf("update aircraft: %w", err)
	}
	return nil
}

func (s *PostgresAircraftStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM aircraft WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete aircraft: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

type PostgresAirportStore struct {
	pool *pgxpool.Pool
}

func NewPostgresAirportStore(pool *pgxpool.Pool) *PostgresAirportStore {
	return &PostgresAirportStore{pool: pool}
}

const airportColumns = `id, iata, name, latitude, longitude`

func (s *PostgresAirportStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+airportColumns+` FROM airports WHERE id = $1`, id)
	airport, err := scanAirport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find airport by id: %w", err)
	}
	return airport, nil
}

func (s *PostgresAirportStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Airport, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+airportColumns+` FROM airports WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find airports by ids: %w", err)
	}
	defer rows.Close()
	return collectAirports(rows)
}

func (s *PostgresAirportStore) FindByIata(ctx context.Context, iata string) (*domain.Airport, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+airportColumns+` FROM airports WHERE iata = upper($1)`, iata)
	airport, err := scanAirport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find airport by iata: %w", err)
	}
	return airport, nil
}

func (s *PostgresAirportStore) FindAll(ctx context.Context) ([]*domain.Airport, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+airportColumns+` FROM airports ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("find all airports: %w", err)
	}
	defer rows.Close()
	return collectAirports(rows)
}

func (s *PostgresAirportStore) Search(ctx context.Context, term string, skip, take int) ([]*domain.Airport, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+airportColumns+` FROM airports
		 WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR iata ILIKE '%' || $1 || '%'
		 ORDER BY name OFFSET $2 LIMIT $3`,
		term, skip, take)
	if err != nil {
		return nil, fmt.Errorf("search airports: %w", err)
	}
	defer rows.Close()
	return collectAirports(rows)
}

func (s *PostgresAirportStore) Count(ctx context.Context, term string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM airports
		 WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR iata ILIKE '%' || $1 || '%'`,
		term).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count airports: %w", err)
	}
	return count, nil
}

func (s *PostgresAirportStore) Add(ctx context.Context, airport *domain.Airport) error {
	loc := airport.Location()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO airports (id, iata, name, latitude, longitude) VALUES ($1, $2, $3, $4, $5)`,
		airport.ID(), airport.Iata().String(), airport.Name(), loc.Latitude(), loc.Longitude())
	if err != nil {
		return fmt.Errorf("add airport: %w", err)
	}
	return nil
}

func (s *PostgresAirportStore) Update(ctx context.Context, airport *domain.Airport) error {
	loc := airport.Location()
	_, err := s.pool.Exec(ctx,
		`UPDATE airports SET iata = $2, name = $3, latitude = $4, longitude = $5 WHERE id = $1`,
		airport.ID(), airport.Iata().String(), airport.Name(), loc.Latitude(), loc.Longitude())
	if err != nil {
		return fmt.Errorf("update airport: %w", err)
	}
	return nil
}

func (s *PostgresAirportStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete airport: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

type PostgresFlightStore struct {
	pool *pgxpool.Pool
}

func NewPostgresFlightStore(pool *pgxpool.Pool) *PostgresFlightStore {
	return &PostgresFlightStore{pool: pool}
}

func (s *PostgresFlightStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, origin_id, destination_id, aircraft_id, departure_at FROM flights WHERE id = $1`, id)
	flight, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find flight by id: %w", err)
	}
	return flight, nil
}

func (s *PostgresFlightStore) FindAll(ctx context.Context) ([]*domain.Flight, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, origin_id, destination_id, aircraft_id, departure_at FROM flights ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("find all flights: %w", err)
	}
	defer rows.Close()

	var flights []*domain.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, flight)
	}
	return flights, rows.Err()
}

func (s *PostgresFlightStore) Add(ctx context.Context, flight *domain.Flight) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO flights (id, origin_id, destination_id, aircraft_id, departure_at) VALUES ($1, $2, $3, $4, $5)`,
		flight.ID(), flight.OriginID(), flight.DestinationID(), flight.AircraftID(), flight.DepartureAt())
	if err != nil {
		return fmt.Errorf("add flight: %w", err)
	}
	return nil
}

func (s *PostgresFlightStore) Update(ctx context.Context, flight *domain.Flight) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE flights SET origin_id = $2, destination_id = $3, aircraft_id = $4, departure_at = $5 WHERE id = $1`,
		flight.ID(), flight.OriginID(), flight.DestinationID(), flight.AircraftID(), flight.DepartureAt())
	if err != nil {
		return fmt.Errorf("update flight: %w", err)
	}
	return nil
}

func (s *PostgresFlightStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete flight: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAircraft(row pgx.Row) (*domain.Aircraft, error) {
	var (
		id                  uuid.UUID
		model               string
		cruise, burn, fixed float64
	)
	if err := row.Scan(&id, &model, &cruise, &burn, &fixed); err != nil {
		return nil, err
	}
	return domain.ReconstituteAircraft(id, model, cruise, burn, fixed)
}

func collectAircraft(rows pgx.Rows) ([]*domain.Aircraft, error) {
	var all []*domain.Aircraft
	for rows.Next() {
		aircraft, err := scanAircraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan aircraft: %w", err)
		}
		all = append(all, aircraft)
	}
	return all, rows.Err()
}

func scanAirport(row pgx.Row) (*domain.Airport, error) {
	var (
		id       uuid.UUID
		iataRaw  string
		name     string
		lat, lon float64
	)
	if err := row.Scan(&id, &iataRaw, &name, &lat, &lon); err != nil {
		return nil, err
	}
	iata, err := domain.NewIataCode(iataRaw)
	if err != nil {
		return nil, err
	}
	location, err := domain.NewGeoCoordinate(lat, lon)
	if err != nil {
		return nil, err
	}
	return domain.ReconstituteAirport(id, iata, name, location)
}

func collectAirports(rows pgx.Rows) ([]*domain.Airport, error) {
	var all []*domain.Airport
	for rows.Next() {
		airport, err := scanAirport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		all = append(all, airport)
	}
	return all, rows.Err()
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var (
		id, originID, destinationID, aircraftID uuid.UUID
		departureAt                             *time.Time
	)
	if err := row.Scan(&id, &originID, &destinationID, &aircraftID, &departureAt); err != nil {
		return nil, err
	}
	return domain.ReconstituteFlight(id, originID, destinationID, aircraftID, departureAt)
}
