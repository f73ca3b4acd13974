package mongodb

import (
	"context"
	"fmt"
	"time"

	"fincore/internal/company/domain/model"
	"fincore/internal/company/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCompanyRepository implements the CompanyRepository interface using MongoDB
type MongoCompanyRepository struct {
	db                  *mongo.Database
	companiesCollection *mongo.Collection
}

// NewMongoCompanyRepository creates a new MongoDB company repository.
// The unique index on name is the store-level guard company creation relies
// on; the application-level pre-check alone would race under concurrency.
func NewMongoCompanyRepository(db *mongo.Database) (*MongoCompanyRepository, error) {
	repo := &MongoCompanyRepository{
		db:                  db,
		companiesCollection: db.Collection("companies"),
	}

	ctx := context.Background()

	nameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := repo.companiesCollection.Indexes().CreateOne(ctx, nameIndex); err != nil {
		return nil, fmt.Errorf("failed to create company name index: %w", err)
	}

	return repo, nil
}

// CreateCompany creates a new company in the database
func (r *MongoCompanyRepository) CreateCompany(ctx context.Context, company *model.Company) error {
	if company == nil {
		return fmt.Errorf("company cannot be nil")
	}

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	if company.FinancialYears == nil {
		company.FinancialYears = []model.FinancialYear{}
	}

	result, err := r.companiesCollection.InsertOne(ctx, company)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return usecase.ErrCompanyNameTaken
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		company.ObjectID = oid
		company.ID = oid.Hex()
	}

	return nil
}

// GetCompanyByName retrieves a company by name
func (r *MongoCompanyRepository) GetCompanyByName(ctx context.Context, name string) (*model.Company, error) {
	if name == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	var company model.Company
	err := r.companiesCollection.FindOne(ctx, bson.M{"name": name}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}

	if !company.ObjectID.IsZero() {
		company.ID = company.ObjectID.Hex()
	}

	return &company, nil
}

// ListCompanies returns every company record
func (r *MongoCompanyRepository) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	cursor, err := r.companiesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	companies := make([]*model.Company, 0)
	for cursor.Next(ctx) {
		var company model.Company
		if err := cursor.Decode(&company); err != nil {
			return nil, err
		}
		if !company.ObjectID.IsZero() {
			company.ID = company.ObjectID.Hex()
		}
		companies = append(companies, &company)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// AppendFinancialYear atomically appends a financial year to the named
// company's embedded array via $push.
func (r *MongoCompanyRepository) AppendFinancialYear(ctx context.Context, companyName string, year model.FinancialYear) error {
	if companyName == "" {
		return fmt.Errorf("company name cannot be empty")
	}

	update := bson.M{
		"$push": bson.M{"financial_years": year},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.companiesCollection.UpdateOne(ctx, bson.M{"name": companyName}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return usecase.ErrCompanyNotFound
	}

	return nil
}
