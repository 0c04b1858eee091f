//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cuponx-backend/tests/common/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference rows created by SeedReferenceData. Identities restart on every reset.
const (
	MerchantAID int64 = 1
	MerchantBID int64 = 2
)

const (
	MerchantAMail = "pizzeria@example.com"
	OperatorEmail = "admin@cuponx.local"
)

func CreateConsumer(t *testing.T, db DBLike, email, nationalID string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO clientes (nombres, apellidos, telefono, correo, direccion, dui, password_hash, verificado, verificado_at)
		VALUES ('Ana', 'Martínez', '7777-8888', $1, 'San Salvador', $2, $3, TRUE, NOW())
		RETURNING id`,
		email, nationalID, builder.DefaultPasswordHash()).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateEmployee(t *testing.T, db DBLike, merchantID int64, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO administradores_empresas (empresa_id, nombres, apellidos, correo, password_hash)
		VALUES ($1, 'Luis', 'Pérez', $2, $3)
		RETURNING id`,
		merchantID, email, builder.DefaultPasswordHash()).Scan(&id)
	require.NoError(t, err)
	return id
}

// OfferFixture describes an approved offer that is live today unless dates are overridden.
type OfferFixture struct {
	MerchantID int64
	Title      string
	Regular    string
	Price      string
	Start      time.Time
	End        time.Time
	Deadline   *time.Time
	Capacity   *int
	State      string
}

func NewOfferFixture(merchantID int64) OfferFixture {
	today := builder.Today()
	deadline := today.AddDate(0, 1, 0)
	return OfferFixture{
		MerchantID: merchantID,
		Title:      "2x1 en pizzas",
		Regular:    "20.00",
		Price:      "15.00",
		Start:      today.AddDate(0, 0, -1),
		End:        today.AddDate(0, 0, 7),
		Deadline:   &deadline,
		State:      "aprobada",
	}
}

func CreateOffer(t *testing.T, db DBLike, f OfferFixture) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO ofertas (empresa_id, titulo, descripcion, precio_regular, precio_oferta,
		                     fecha_inicio_oferta, fecha_fin_oferta, fecha_limite_uso, cantidad_limite, estado)
		VALUES ($1, $2, 'Oferta de prueba', $3::text::numeric, $4::text::numeric, $5, $6, $7, $8, $9)
		RETURNING id`,
		f.MerchantID, f.Title, f.Regular, f.Price, f.Start, f.End, f.Deadline, f.Capacity, f.State).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountCoupons(t *testing.T, db DBLike, offerID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM cupones WHERE oferta_id = $1", offerID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CouponState(t *testing.T, db DBLike, code string) string {
	t.Helper()

	var state string
	err := db.QueryRow(context.Background(), "SELECT estado FROM cupones WHERE codigo = $1", code).Scan(&state)
	require.NoError(t, err)
	return state
}

// SeedReferenceData inserts the categories, the two merchants and the operator every test relies on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	hash := builder.DefaultPasswordHash()

	_, err := pool.Exec(ctx, `
		INSERT INTO rubros (nombre, descripcion) VALUES
		    ('Restaurantes', 'Comida y bebida'),
		    ('Belleza', 'Salones y spa')
		ON CONFLICT (nombre) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO empresas (codigo, nombre, direccion, telefono, correo, password_hash, rubro_id) VALUES
		    ('RES001', 'Pizzería Roma', 'San Salvador', '2222-3333', $1, $2, 1),
		    ('BEL002', 'Spa Luna', 'Santa Tecla', '2222-4444', 'spa@example.com', $2, 2)
		ON CONFLICT (codigo) DO NOTHING;
	`, MerchantAMail, hash)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO administradores_cuponx (nombres, apellidos, correo, password_hash)
		VALUES ('Admin', 'CuponX', $1, $2)
		ON CONFLICT (correo) DO NOTHING;
	`, OperatorEmail, hash)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
