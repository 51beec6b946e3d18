package http

import (
	"mime/multipart"

	"users-srv/internal/model"
	"users-srv/internal/user"
)

type userResp struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	PropicURL *string `json:"propic_url"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Surname:   u.Surname,
		PropicURL: u.PropicURL,
	}
}

type notificationDataResp struct {
	Owner       string `json:"owner"`
	CarName     string `json:"car_name"`
	TankSize    string `json:"tank_size"`
	Consumption string `json:"consumption"`
}

type notificationResp struct {
	ID        string               `json:"id"`
	ToUser    string               `json:"to_user"`
	CreatedAt string               `json:"created_at"`
	Data      notificationDataResp `json:"data"`
}

func newNotificationsResp(ns []model.Notification) []notificationResp {
	resp := make([]notificationResp, 0, len(ns))
	for _, n := range ns {
		resp = append(resp, notificationResp{
			ID:        n.ID,
			ToUser:    n.ToUser,
			CreatedAt: n.CreatedAt,
			Data: notificationDataResp{
				Owner:       n.Data.Owner,
				CarName:     n.Data.CarName,
				TankSize:    n.Data.TankSize,
				Consumption: n.Data.Consumption,
			},
		})
	}
	return resp
}

type updatePropicReq struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

func (r updatePropicReq) toInput(f multipart.File) user.UpdatePropicInput {
	return user.UpdatePropicInput{
		Filename:    r.File.Filename,
		ContentType: r.File.Header.Get("Content-Type"),
		Size:        r.File.Size,
		File:        f,
	}
}
