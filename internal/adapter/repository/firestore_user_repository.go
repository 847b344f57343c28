package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
	"smartagri/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection(entity.CollectionUsers).Doc(user.UID).Set(ctx, user)
	if err != nil {
		return errors.FromFirestore("save user profile", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(entity.CollectionUsers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.FromFirestore("read user profile", err)
	}

	user, err := entity.DecodeUser(doc.Ref.ID, doc.Data())
	if err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return user, nil
}
