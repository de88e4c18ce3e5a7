package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/model"
	"github.com/pac-cee/mongocli/internal/storage"
)

// SocialUserRepo implements SocialUserRepository on the users collection.
type SocialUserRepo struct {
	cl    *storage.Client
	users collection[model.SocialUser]
}

// NewSocialUserRepo constructs a social-network user repository.
func NewSocialUserRepo(cl *storage.Client) *SocialUserRepo {
	return &SocialUserRepo{cl: cl, users: newCollection[model.SocialUser](cl, "users")}
}

// EnsureIndexes creates the unique username index.
func (r *SocialUserRepo) EnsureIndexes(ctx context.Context) error {
	return r.cl.EnsureIndex(ctx, "users", mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}

func (r *SocialUserRepo) Register(ctx context.Context, username string) error {
	return r.users.insert(ctx, model.SocialUser{
		Username: username,
		Friends:  []string{},
		Requests: []string{},
	})
}

func (r *SocialUserRepo) GetByUsername(ctx context.Context, username string) (*model.SocialUser, error) {
	return r.users.findOne(ctx, bson.M{"username": username})
}

// AddRequest records the pending request with $addToSet so repeated sends do
// not pile up duplicates.
func (r *SocialUserRepo) AddRequest(ctx context.Context, to, from string) error {
	matched, err := r.users.updateOne(ctx,
		bson.M{"username": to},
		bson.M{"$addToSet": bson.M{"requests": from}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AcceptRequest updates both user documents in one server transaction so the
// friendship is mutual or not recorded at all. The request must be pending;
// the pull and the friend additions are keyed on it.
func (r *SocialUserRepo) AcceptRequest(ctx context.Context, username, from string) error {
	return r.cl.InTransaction(ctx, func(ctx context.Context) error {
		matched, err := r.users.updateOne(ctx,
			bson.M{"username": username, "requests": from},
			bson.M{
				"$addToSet": bson.M{"friends": from},
				"$pull":     bson.M{"requests": from},
			},
		)
		if err != nil {
			return err
		}
		if matched == 0 {
			if _, err := r.GetByUsername(ctx, username); err != nil {
				return err
			}
			return errs.ErrNoSuchRequest
		}

		matched, err = r.users.updateOne(ctx,
			bson.M{"username": from},
			bson.M{"$addToSet": bson.M{"friends": username}},
		)
		if err != nil {
			return err
		}
		if matched == 0 {
			// Requester vanished since sending; abort the whole accept.
			return errs.ErrNotFound
		}
		return nil
	})
}

// StatusRepo implements StatusRepository on the statuses collection.
type StatusRepo struct {
	statuses collection[model.Status]
}

// NewStatusRepo constructs a status repository.
func NewStatusRepo(cl *storage.Client) *StatusRepo {
	return &StatusRepo{statuses: newCollection[model.Status](cl, "statuses")}
}

func (r *StatusRepo) Add(ctx context.Context, s *model.Status) error {
	return r.statuses.insert(ctx, s)
}

func (r *StatusRepo) Feed(ctx context.Context, usernames []string, limit int) ([]model.Status, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))
	return r.statuses.find(ctx, feedFilter(usernames), opts)
}

// feedFilter matches statuses from any of the given usernames.
func feedFilter(usernames []string) bson.M {
	return bson.M{"username": bson.M{"$in": usernames}}
}
