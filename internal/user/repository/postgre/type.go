package postgres

import (
	"time"

	"users-srv/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
)

type userRow struct {
	ID        string      `boil:"id"`
	Email     string      `boil:"email"`
	Name      string      `boil:"name"`
	Surname   string      `boil:"surname"`
	Password  string      `boil:"password"`
	PropicURL null.String `boil:"propic_url"`
	CreatedAt time.Time   `boil:"created_at"`
}

func (u userRow) toModel() model.User {
	usr := model.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Surname:      u.Surname,
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
	}
	if u.PropicURL.Valid {
		usr.PropicURL = &u.PropicURL.String
	}
	return usr
}

type notificationRow struct {
	ID        string     `boil:"id"`
	ToUser    string     `boil:"to_user"`
	Data      types.JSON `boil:"data"`
	CreatedAt string     `boil:"created_at"`
}

func (n notificationRow) toModel() (model.Notification, error) {
	out := model.Notification{
		ID:        n.ID,
		ToUser:    n.ToUser,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		if err := n.Data.Unmarshal(&out.Data); err != nil {
			return model.Notification{}, err
		}
	}
	return out, nil
}
