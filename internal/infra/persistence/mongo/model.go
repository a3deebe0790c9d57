package mongo

import (
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// userDocument is the stored shape of a user in the users collection.
type userDocument struct {
	ID        string     `bson:"_id"`
	Name      string     `bson:"name"`
	Email     string     `bson:"email"`
	Avatar    string     `bson:"avatar"`
	Password  string     `bson:"password"`
	LastLogin *time.Time `bson:"lastLogin,omitempty"`
	Date      time.Time  `bson:"date"`
	UpdatedAt time.Time  `bson:"updatedAt"`
}

func toUserDomain(doc *userDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		Name:         doc.Name,
		Email:        doc.Email,
		AvatarURL:    doc.Avatar,
		PasswordHash: doc.Password,
		LastLoginAt:  doc.LastLogin,
		CreatedAt:    doc.Date,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.AvatarURL,
		Password:  user.PasswordHash,
		LastLogin: user.LastLoginAt,
		Date:      user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
