package services

import (
	"testing"

	"terek_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCertificate_Idempotent(t *testing.T) {
	repos := setupRepos(t)
	renderer := &fakeRenderer{}
	mailer := &fakeMailer{}
	svc := NewCertificateService(repos.Certificates, renderer, mailer, "/certificates")

	donation := seedDonation(t, repos, nil, "donor@example.com", models.DonationStatusCompleted)

	first, err := svc.EnsureCertificate(donation)
	require.NoError(t, err)
	require.NotNil(t, first.PDFURL)

	second, err := svc.EnsureCertificate(donation)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// One render, one email, no matter how many calls.
	assert.Equal(t, 1, renderer.renders)
	assert.Len(t, mailer.sent, 1)
}

func TestEnsureCertificate_FallbackURLWhenRendererFails(t *testing.T) {
	repos := setupRepos(t)
	renderer := &fakeRenderer{fail: true}
	svc := NewCertificateService(repos.Certificates, renderer, &fakeMailer{}, "/certificates")

	donation := seedDonation(t, repos, nil, "donor@example.com", models.DonationStatusCompleted)

	cert, err := svc.EnsureCertificate(donation)
	require.NoError(t, err)
	require.NotNil(t, cert.PDFURL)
	assert.Equal(t, "/certificates/"+donation.ID+".png", *cert.PDFURL)
}

func TestListForUser_OnlyOwnCertificates(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCertificateService(repos.Certificates, &fakeRenderer{}, &fakeMailer{}, "/certificates")

	guest := seedGuestOwner(t, repos, "mine@example.com")
	mine := seedDonation(t, repos, &guest.ID, "mine@example.com", models.DonationStatusCompleted)
	other := seedDonation(t, repos, nil, "other@example.com", models.DonationStatusCompleted)

	_, err := svc.EnsureCertificate(mine)
	require.NoError(t, err)
	_, err = svc.EnsureCertificate(other)
	require.NoError(t, err)

	certs, err := svc.ListForUser(guest.ID)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, mine.ID, certs[0].DonationID)
}
