package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"omoro/internal/domain"
	"omoro/internal/kv"
)

type EnquiryRepo struct {
	db     *sqlx.DB
	schema lazySchema
}

func NewEnquiryRepo(db *sqlx.DB) *EnquiryRepo {
	return &EnquiryRepo{db: db, schema: lazySchema{ddl: enquirySchema}}
}

// Insert stores e as given (date and status included) and returns its new id.
func (r *EnquiryRepo) Insert(ctx context.Context, client string, e domain.Enquiry) (int64, error) {
	if client == "" {
		return 0, kv.ErrUnavailable
	}
	if err := r.schema.ensure(ctx, r.db); err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO enquiries(client_id,type,name,phone,email,location,message,product_name,model_number,date,status)
VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		client, e.Type, e.Name, e.Phone, e.Email, e.Location, e.Message, e.ProductName, e.ModelNumber, e.Date, e.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns the client's enquiries, newest first.
func (r *EnquiryRepo) List(ctx context.Context, client string) ([]domain.Enquiry, error) {
	out := []domain.Enquiry{}
	if client == "" {
		return out, nil
	}
	if err := r.schema.ensure(ctx, r.db); err != nil {
		return nil, err
	}
	err := r.db.SelectContext(ctx, &out, `
SELECT id,type,name,phone,email,location,message,product_name,model_number,date,status
FROM enquiries WHERE client_id=? ORDER BY date DESC, id DESC`, client)
	return out, err
}

// Delete removes one enquiry; a missing id is not an error.
func (r *EnquiryRepo) Delete(ctx context.Context, client string, id int64) error {
	if client == "" {
		return kv.ErrUnavailable
	}
	if err := r.schema.ensure(ctx, r.db); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM enquiries WHERE client_id=? AND id=?`, client, id)
	return err
}

// Clients lists client ids with at least one enquiry.
func (r *EnquiryRepo) Clients(ctx context.Context) ([]string, error) {
	if err := r.schema.ensure(ctx, r.db); err != nil {
		return nil, err
	}
	var out []string
	err := r.db.SelectContext(ctx, &out, `SELECT DISTINCT client_id FROM enquiries ORDER BY client_id`)
	return out, err
}
