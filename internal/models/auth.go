package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	ID      primitive.ObjectID `json:"_id"`
	Email   string             `json:"email"`
	IsAdmin bool               `json:"isAdmin"`
	Token   string             `json:"token"`
}

// DashboardStats summarises the collections for the admin dashboard
type DashboardStats struct {
	TotalResults  int64 `json:"totalResults"`
	TotalTickets  int64 `json:"totalTickets"`
	ActiveTickets int64 `json:"activeTickets"`
}
