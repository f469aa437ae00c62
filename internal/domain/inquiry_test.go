package domain_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/internal/domain"
)

func TestCreateInquiryRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.CreateInquiryRequest
		wantErr bool
	}{
		{name: "valid", req: domain.CreateInquiryRequest{ReferenceID: "CSR-1", CompanyName: "Acme", Inquiry: "Need a quote"}},
		{name: "missing inquiry", req: domain.CreateInquiryRequest{ReferenceID: "CSR-1", CompanyName: "Acme"}, wantErr: true},
		{name: "missing referenceid", req: domain.CreateInquiryRequest{CompanyName: "Acme", Inquiry: "x"}, wantErr: true},
		{name: "bad email", req: domain.CreateInquiryRequest{ReferenceID: "CSR-1", CompanyName: "Acme", Inquiry: "x", EmailAddress: "a@"}, wantErr: true},
		{name: "bad status", req: domain.CreateInquiryRequest{ReferenceID: "CSR-1", CompanyName: "Acme", Inquiry: "x", Status: "Open"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inquiry, err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.InquiryStatusPending, inquiry.Status)
		})
	}
}

func TestUpdateInquiryRequest_Validate(t *testing.T) {
	req := domain.UpdateInquiryRequest{ID: 4, CreateInquiryRequest: domain.CreateInquiryRequest{CompanyName: "Acme", Inquiry: "Follow up"}}
	inquiry, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, int64(4), inquiry.ID)
	assert.Empty(t, inquiry.Status)

	req.Status = domain.InquiryStatusClosed
	inquiry, err = req.Validate()
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusClosed, inquiry.Status)
}

func TestInquiryRequests(t *testing.T) {
	var list domain.ListInquiriesRequest
	assert.Error(t, list.FromURLParams(url.Values{"status": {"Closed"}}))
	require.NoError(t, list.FromURLParams(url.Values{"referenceid": {"CSR-1"}, "status": {"Closed"}}))
	assert.Equal(t, "Closed", list.Status)

	assert.Error(t, (&domain.UpdateInquiryStatusRequest{ID: 1, Status: "Open"}).Validate())
	assert.NoError(t, (&domain.UpdateInquiryStatusRequest{ID: 1, Status: "Endorsed"}).Validate())

	update := domain.UpdateInquiryRequest{ID: 2, CreateInquiryRequest: domain.CreateInquiryRequest{CompanyName: "Acme", Inquiry: "x"}}
	inquiry, err := update.Validate()
	require.NoError(t, err)
	assert.Equal(t, int64(2), inquiry.ID)
}

func TestNotificationRequests(t *testing.T) {
	var list domain.ListNotificationsRequest
	assert.Error(t, list.FromURLParams(url.Values{}))
	assert.Error(t, list.FromURLParams(url.Values{"referenceid": {"TSA-1"}, "status": {"Seen"}}))

	n, err := (&domain.CreateNotificationRequest{ReferenceID: "TSA-1", Message: "Quota reached"}).Validate()
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationStatusUnread, n.Status)

	_, err = (&domain.MarkNotificationsReadRequest{}).Validate()
	assert.EqualError(t, err, "validation error: ids is required")
}

func TestSendEmailRequest_Validate(t *testing.T) {
	req := domain.SendEmailRequest{ReferenceID: "TSA-1", Recipient: "buyer@example.com", Subject: "Hi {{ name }}", Message: "<p>Hello</p>"}
	assert.NoError(t, req.Validate())

	bad := req
	bad.Recipient = "buyer"
	assert.EqualError(t, bad.Validate(), "validation error: recipient is not a valid email")

	empty := req
	empty.Message = " "
	assert.EqualError(t, empty.Validate(), "validation error: message is required")
}
