package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var orderColumns = []string{
	"id", "order_number", "user_id", "status", "payment_status",
	"subtotal", "shipping_fee", "total_amount", "currency",
	"customer_name", "customer_email", "customer_phone",
	"shipping_address", "billing_address", "notes", "created_at", "updated_at",
}

var itemColumns = []string{
	"order_id", "product_id", "vendor_id", "name", "quantity",
	"unit_price", "line_total", "flash_sale_product_id",
}

var historyColumns = []string{
	"order_id", "from_status", "to_status", "from_payment_status",
	"to_payment_status", "reason", "actor", "created_at",
}

var transactionColumns = []string{
	"order_id", "provider", "external_reference", "provider_status", "normalized_status",
	"source", "amount", "currency", "raw_payload", "created_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	shipping, err := addressToJSON(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to encode shipping address: %w", err)
	}
	billing, err := addressToJSON(o.BillingAddress)
	if err != nil {
		return fmt.Errorf("failed to encode billing address: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, nullString(o.UserID), o.Status, o.PaymentStatus,
			o.Subtotal, o.ShippingFee, o.TotalAmount, o.Currency,
			o.Customer.Name, o.Customer.Email, nullString(o.Customer.Phone),
			nullJSON(shipping), nullJSON(billing), nullString(o.Notes), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range o.Items {
		q = q.Values(
			o.ID, it.ProductID, it.VendorID, it.Name, it.Quantity,
			it.UnitPrice, it.LineTotal, nullString(it.FlashSaleProductID),
		)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if notFound(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	result, err := OrderToEntity(order, items)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	return result, nil
}

// FindOrderByNote returns the newest order whose notes contain fragment. It only
// serves orders created before payment references were stored separately.
func (r *postgresRepo) FindOrderByNote(ctx context.Context, fragment string) (entities.Order, error) {
	if strings.TrimSpace(fragment) == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	query, args := r.qb.Select("id").
		From("orders").
		Where(sq.Like{"notes": "%" + escapeLike(fragment) + "%"}).
		OrderBy("created_at DESC").
		Limit(1).
		MustSql()

	var id string
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to search notes: %w", err)
	}
	return r.GetOrderByID(ctx, id)
}

// UpdateStatusIf moves the order to `to` only if it is still in `from`. It
// reports whether this call performed the change.
func (r *postgresRepo) UpdateStatusIf(ctx context.Context, id string, from, to entities.OrderState) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", to.Status).
		Set("payment_status", to.PaymentStatus).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": from.Status}).
		Where(sq.Eq{"payment_status": from.PaymentStatus}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *postgresRepo) AppendHistory(ctx context.Context, e entities.OrderHistoryEntry) error {
	query, args := r.qb.Insert("order_status_history").
		Columns(historyColumns...).
		Values(
			e.OrderID, e.FromStatus, e.ToStatus, e.FromPaymentStatus,
			e.ToPaymentStatus, e.Reason, e.Actor, e.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListHistory(ctx context.Context, orderID string) ([]entities.OrderHistoryEntry, error) {
	query, args := r.qb.Select(historyColumns...).
		From("order_status_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		MustSql()

	var rows []History
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	result := make([]entities.OrderHistoryEntry, 0, len(rows))
	for _, h := range rows {
		result = append(result, HistoryToEntity(h))
	}
	return result, nil
}

func (r *postgresRepo) AppendTransaction(ctx context.Context, t entities.GatewayTransaction) error {
	query, args := r.qb.Insert("gateway_transactions").
		Columns(transactionColumns...).
		Values(
			t.OrderID, t.Provider, t.ExternalReference, t.ProviderStatus, t.NormalizedStatus,
			t.Source, t.Amount, t.Currency, nullJSON(t.RawPayload), t.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListTransactions(ctx context.Context, orderID string) ([]entities.GatewayTransaction, error) {
	query, args := r.qb.Select(transactionColumns...).
		From("gateway_transactions").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		MustSql()

	var rows []Transaction
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	result := make([]entities.GatewayTransaction, 0, len(rows))
	for _, t := range rows {
		result = append(result, TransactionToEntity(t))
	}
	return result, nil
}

func (r *postgresRepo) SaveReference(ctx context.Context, ref entities.PaymentReference) error {
	query, args := r.qb.Insert("payment_references").
		Columns("provider", "external_reference", "order_id", "created_at").
		Values(ref.Provider, ref.ExternalReference, ref.OrderID, ref.CreatedAt).
		Suffix("ON CONFLICT (provider, external_reference) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save reference: %w", err)
	}
	return nil
}

// FindReference looks a provider reference up. An empty provider matches any.
func (r *postgresRepo) FindReference(ctx context.Context, provider, externalRef string) (entities.PaymentReference, error) {
	q := r.qb.Select("provider", "external_reference", "order_id", "created_at").
		From("payment_references").
		Where(sq.Eq{"external_reference": externalRef})
	if provider != "" {
		q = q.Where(sq.Eq{"provider": provider})
	}
	query, args := q.OrderBy("created_at DESC").Limit(1).MustSql()

	return r.getReference(ctx, query, args...)
}

func (r *postgresRepo) LatestReference(ctx context.Context, orderID string) (entities.PaymentReference, error) {
	query, args := r.qb.Select("provider", "external_reference", "order_id", "created_at").
		From("payment_references").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at DESC").
		Limit(1).
		MustSql()

	return r.getReference(ctx, query, args...)
}

func (r *postgresRepo) getReference(ctx context.Context, query string, args ...any) (entities.PaymentReference, error) {
	var ref Reference
	err := r.getContext(ctx, &ref, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PaymentReference{}, entities.ErrReferenceNotFound
	}
	if err != nil {
		return entities.PaymentReference{}, fmt.Errorf("failed to get reference: %w", err)
	}
	return ReferenceToEntity(ref), nil
}

// ListStalePending returns ids of unpaid pending orders created at or before cutoff.
func (r *postgresRepo) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	query, args := r.qb.Select("id").
		From("orders").
		Where(sq.Eq{"status": entities.OrderStatusPending}).
		Where(sq.Eq{"payment_status": entities.PaymentStatusPending}).
		Where(sq.LtOrEq{"created_at": cutoff}).
		OrderBy("created_at").
		Limit(uint64(limit)).
		MustSql()

	var ids []string
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list stale orders: %w", err)
	}
	return ids, nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select("id", "vendor_id", "name", "price", "quantity", "track_stock", "is_active").
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if notFound(err) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *postgresRepo) GetFlashSaleProduct(ctx context.Context, id string) (entities.FlashSaleAllocation, error) {
	query, args := r.qb.Select(
		"fsp.id", "fsp.flash_sale_id", "fsp.product_id", "fsp.sale_price",
		"fsp.max_quantity", "fsp.sold_quantity", "fs.starts_at", "fs.ends_at", "fs.is_active").
		From("flash_sale_products fsp").
		Join("flash_sales fs ON fs.id = fsp.flash_sale_id").
		Where(sq.Eq{"fsp.id": id}).
		MustSql()

	var f FlashSaleProduct
	err := r.getContext(ctx, &f, query, args...)
	if notFound(err) {
		return entities.FlashSaleAllocation{}, entities.ErrFlashSaleNotFound
	}
	if err != nil {
		return entities.FlashSaleAllocation{}, fmt.Errorf("failed to get flash sale product: %w", err)
	}
	return FlashSaleProductToEntity(f), nil
}

// ReserveFlashSale takes qty units from both the allocation and the product.
// Both updates are conditional, so concurrent buyers can never oversell; it must
// run inside a transaction so a failed second update undoes the first.
func (r *postgresRepo) ReserveFlashSale(ctx context.Context, id string, qty int) error {
	query, args := r.qb.Update("flash_sale_products").
		Set("sold_quantity", sq.Expr("sold_quantity + ?", qty)).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("sold_quantity + ? <= max_quantity", qty)).
		Suffix("RETURNING product_id").
		MustSql()

	var productID string
	err := r.getContext(ctx, &productID, query, args...)
	if invalidID(err) {
		return entities.ErrFlashSaleNotFound
	}
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.GetFlashSaleProduct(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: flash sale allocation exhausted", entities.ErrInsufficientStock)
	}
	if err != nil {
		return fmt.Errorf("failed to reserve allocation: %w", err)
	}

	query, args = r.qb.Update("products").
		Set("quantity", sq.Expr("quantity - ?", qty)).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"quantity": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: product out of stock", entities.ErrInsufficientStock)
	}
	return nil
}

// ReleaseFlashSale gives qty units back to the allocation and the product.
func (r *postgresRepo) ReleaseFlashSale(ctx context.Context, id string, qty int) error {
	query, args := r.qb.Update("flash_sale_products").
		Set("sold_quantity", sq.Expr("GREATEST(sold_quantity - ?, 0)", qty)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING product_id").
		MustSql()

	var productID string
	err := r.getContext(ctx, &productID, query, args...)
	if notFound(err) {
		return entities.ErrFlashSaleNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to release allocation: %w", err)
	}

	query, args = r.qb.Update("products").
		Set("quantity", sq.Expr("quantity + ?", qty)).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	return nil
}

// invalid_text_representation: the id is not a UUID, so no row can match it.
const codeInvalidText pq.ErrorCode = "22P02"

func invalidID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeInvalidText
}

func notFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || invalidID(err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
