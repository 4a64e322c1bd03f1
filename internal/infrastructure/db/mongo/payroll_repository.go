package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

const collectionPayrolls = "payrolls"

// PayrollRepository persists payroll entries. Queries match through the
// employee field so reassigned employees keep their history.
type PayrollRepository struct {
	col *mongo.Collection
}

func NewPayrollRepository(db *mongo.Database) *PayrollRepository {
	return &PayrollRepository{col: db.Collection(collectionPayrolls)}
}

func (r *PayrollRepository) Create(ctx context.Context, p *domain.Payroll) (*domain.Payroll, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert payroll: %w", err)
	}
	return p, nil
}

func (r *PayrollRepository) FindByID(ctx context.Context, id string) (*domain.Payroll, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Payroll
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("find payroll: %w", err)
	}
	return &p, nil
}

func payrollQuery(filter ports.ListPayrollFilter) bson.M {
	query := notDeleted(bson.M{
		"employee": bson.M{"$in": filter.EmployeeIDs},
	})
	dateRange := bson.M{}
	if !filter.From.IsZero() {
		dateRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query
}

func (r *PayrollRepository) List(ctx context.Context, filter ports.ListPayrollFilter) ([]*domain.Payroll, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, payrollQuery(filter), options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*domain.Payroll, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode payrolls: %w", err)
	}
	return out, nil
}

func (r *PayrollRepository) Update(ctx context.Context, p *domain.Payroll) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update payroll: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPayrollNotFound
	}
	return nil
}

func (r *PayrollRepository) TotalAmount(ctx context.Context, filter ports.ListPayrollFilter) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: payrollQuery(filter)}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum payrolls: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode payroll total: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// EnsureIndexes creates the employee+date index backing list queries.
func (r *PayrollRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}
