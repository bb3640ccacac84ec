package mentors

import (
	"context"
	"fmt"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/app/models"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MentorMongoRepository struct {
	Collection *mongo.Collection
}

func NewMentorMongoRepository(db *mongo.Database) contracts.MentorRepository {
	return &MentorMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMentors),
	}
}

func (r *MentorMongoRepository) FindByID(ctx context.Context, mentorID string) (*models.Mentor, error) {
	objectID, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var mentor models.Mentor
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&mentor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &mentor, nil
}

func (r *MentorMongoRepository) UpdateProfile(ctx context.Context, mentorID string, update *models.MentorProfileUpdate) error {
	fields := profileUpdateToBsonM(update)
	fields["updatedAt"] = time.Now()
	return r.updateExisting(ctx, mentorID, bson.M{"$set": fields})
}

// FindAvailability returns an empty snapshot when the mentor has no document yet.
func (r *MentorMongoRepository) FindAvailability(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
	objectID, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	projection := bson.M{"availability": 1, "dateAvailability": 1}
	var snapshot models.AvailabilitySnapshot
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}, options.FindOne().SetProjection(projection)).Decode(&snapshot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NewAvailabilitySnapshot(), nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return snapshot.Clone(), nil
}

// SaveAvailability replaces the stored schedule, creating the mentor document
// when it does not exist yet.
func (r *MentorMongoRepository) SaveAvailability(ctx context.Context, mentorID string, snapshot *models.AvailabilitySnapshot) error {
	objectID, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	// Clone keeps blocked dates as empty arrays rather than null.
	snapshot = snapshot.Clone()
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"availability":     snapshot.WeeklySlots,
			"dateAvailability": snapshot.DateOverrides,
			"updatedAt":        now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MentorMongoRepository) FindCompanyProfile(ctx context.Context, mentorID string) (*models.CompanyProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var mentor models.Mentor
	projection := bson.M{"companyProfile": 1}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}, options.FindOne().SetProjection(projection)).Decode(&mentor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return mentor.CompanyProfile, nil
}

func (r *MentorMongoRepository) SaveCompanyProfile(ctx context.Context, mentorID string, profile *models.CompanyProfile) error {
	return r.updateExisting(ctx, mentorID, bson.M{
		"$set": bson.M{
			"companyProfile": profile,
			"updatedAt":      time.Now(),
		},
	})
}

func (r *MentorMongoRepository) updateExisting(ctx context.Context, mentorID string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMentorNotExist(fmt.Errorf("mentor %s not found", mentorID))
	}
	return nil
}

func profileUpdateToBsonM(update *models.MentorProfileUpdate) bson.M {
	fields := bson.M{}
	setString := func(key string, value *string) {
		if value != nil {
			fields[key] = *value
		}
	}

	setString("name", update.Name)
	setString("title", update.Title)
	setString("bio", update.Bio)
	setString("email", update.Email)
	setString("phone", update.Phone)
	setString("countryCode", update.CountryCode)
	setString("gender", update.Gender)
	setString("linkedin", update.LinkedIn)
	setString("profileImage", update.ProfileImage)
	setString("bannerImage", update.BannerImage)
	setString("bankName", update.BankName)
	setString("accountNumber", update.AccountNumber)
	setString("ifsc", update.IFSC)
	setString("upiId", update.UPIID)
	if update.Expertise != nil {
		fields["expertise"] = update.Expertise
	}
	return fields
}
