package model

import "github.com/golang-jwt/jwt/v5"

type PushGatewayCommand struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type PushGatewayCommandParams struct {
	Channel string `json:"channel"`
	Data    Event  `json:"data"`
}

type ConnectClaims struct {
	jwt.RegisteredClaims
}

type SubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}
