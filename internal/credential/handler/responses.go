package handler

import "credchain/internal/credential/models"

type IssueCredentialResponse struct {
	Status          string `json:"status"`
	TransactionHash string `json:"transactionHash"`
	AssetCode       string `json:"assetCode"`
	ContentID       string `json:"contentId"`
}

type VerifyResponse struct {
	Wallet      string                  `json:"wallet"`
	Credentials []models.CredentialView `json:"credentials"`
}
