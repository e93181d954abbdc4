package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"credchain/internal/credential/handler/mocks"
	"credchain/internal/credential/models"
	dErrors "credchain/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite
	router      http.Handler
	ctrl        *gomock.Controller
	mockService *mocks.MockService
	wallet      string
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	s.wallet = keypair.MustRandom().Address()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(s.mockService, logger)

	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) issueBody(title string) []byte {
	body, err := json.Marshal(map[string]string{
		"recipientName":   "Ada Lovelace",
		"recipientWallet": s.wallet,
		"credentialTitle": title,
		"description":     "Completed the Go fundamentals course",
		"proofUrl":        "https://example.com/proof/1",
	})
	s.Require().NoError(err)
	return body
}

func (s *HandlerSuite) postIssue(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/issue-credential", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestIssueCredential() {
	s.mockService.EXPECT().
		Issue(gomock.Any(), models.IssueCommand{
			RecipientName:   "Ada Lovelace",
			RecipientWallet: s.wallet,
			Title:           "Go Level 1",
			Description:     "Completed the Go fundamentals course",
			ProofURL:        "https://example.com/proof/1",
		}).
		Return(&models.IssueResult{
			TransactionHash: "abcd1234",
			AssetCode:       "GOLEVEL1",
			ContentID:       "Qm123...XYZ",
		}, nil)

	rec := s.postIssue(s.issueBody("Go Level 1"))

	s.Equal(http.StatusOK, rec.Code)
	var resp IssueCredentialResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("issued", resp.Status)
	s.Equal("abcd1234", resp.TransactionHash)
	s.Equal("GOLEVEL1", resp.AssetCode)
	s.Equal("Qm123...XYZ", resp.ContentID)
}

func (s *HandlerSuite) TestIssueCredential_InvalidJSON() {
	rec := s.postIssue([]byte("not valid json"))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestIssueCredential_MissingFields() {
	body, err := json.Marshal(map[string]string{
		"recipientName": "Ada Lovelace",
	})
	s.Require().NoError(err)

	rec := s.postIssue(body)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestIssueCredential_BlankTitle() {
	body, err := json.Marshal(map[string]string{
		"recipientName":   "Ada Lovelace",
		"recipientWallet": s.wallet,
		"credentialTitle": "   ",
		"description":     "desc",
		"proofUrl":        "https://example.com/proof/1",
	})
	s.Require().NoError(err)

	rec := s.postIssue(body)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestIssueCredential_ValidationErrorFromService() {
	s.mockService.EXPECT().
		Issue(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeValidation, "credential_title contains no characters usable in an asset code"))

	rec := s.postIssue(s.issueBody("!!!"))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "validation_failed")
}

func (s *HandlerSuite) TestIssueCredential_AmbiguousOutcomeMapsTo409() {
	s.mockService.EXPECT().
		Issue(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeAmbiguousOutcome, "submission timed out; outcome unknown"))

	rec := s.postIssue(s.issueBody("Go Level 1"))
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "ambiguous_outcome")
}

func (s *HandlerSuite) TestIssueCredential_LedgerRejectionMapsTo502() {
	s.mockService.EXPECT().
		Issue(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeLedgerRejected, "transaction rejected by ledger: tx_bad_seq"))

	rec := s.postIssue(s.issueBody("Go Level 1"))
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *HandlerSuite) TestIssueCredential_StorageFailureMapsTo502() {
	s.mockService.EXPECT().
		Issue(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeStorageUnavailable, "ipfs add failed"))

	rec := s.postIssue(s.issueBody("Go Level 1"))
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *HandlerSuite) TestIssueCredential_TimeoutMapsTo504() {
	s.mockService.EXPECT().
		Issue(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeTimeout, "ledger call deadline exceeded"))

	rec := s.postIssue(s.issueBody("Go Level 1"))
	s.Equal(http.StatusGatewayTimeout, rec.Code)
}

func (s *HandlerSuite) TestVerifyWallet() {
	s.mockService.EXPECT().
		Verify(gomock.Any(), s.wallet).
		Return([]models.CredentialView{
			{Title: "GOLEVEL1", Issuer: "ISSUER_ID", IssueDate: "On-chain", ProofURL: "Stored in memo / IPFS", Verified: true},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/verify/"+s.wallet, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	var resp VerifyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(s.wallet, resp.Wallet)
	s.Require().Len(resp.Credentials, 1)
	s.Equal("GOLEVEL1", resp.Credentials[0].Title)
	s.True(resp.Credentials[0].Verified)
}

func (s *HandlerSuite) TestVerifyWallet_EmptyListIsNotNull() {
	s.mockService.EXPECT().Verify(gomock.Any(), s.wallet).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/verify/"+s.wallet, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"credentials":[]`)
}

func (s *HandlerSuite) TestVerifyWallet_UnknownAccountMapsTo404() {
	s.mockService.EXPECT().
		Verify(gomock.Any(), s.wallet).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "account not found on ledger"))

	req := httptest.NewRequest(http.MethodGet, "/verify/"+s.wallet, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}
