package vault

import (
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleEntries returns the demo vault used when seeding an empty
// database.
func SampleEntries() []models.Entry {
	return []models.Entry{
		{
			ID: "1", Name: "Gmail", Username: "john.doe@gmail.com", Email: "john.doe@gmail.com",
			Password: "SecurePass123!", URL: "https://gmail.com", Category: "Email",
			CreatedAt: at("2024-01-15T10:30:00Z"), UpdatedAt: at("2024-01-15T10:30:00Z"),
			Notes: "Primary email account",
		},
		{
			ID: "2", Name: "GitHub", Username: "johndoe",
			Password: "GitHubSecure456!", URL: "https://github.com", Category: "Development",
			CreatedAt: at("2024-01-16T14:20:00Z"), UpdatedAt: at("2024-01-16T14:20:00Z"),
		},
		{
			ID: "3", Name: "Netflix", Username: "john.doe@email.com",
			Password: "NetflixWatch789!", URL: "https://netflix.com", Category: "Entertainment",
			CreatedAt: at("2024-01-17T09:15:00Z"), UpdatedAt: at("2024-01-17T09:15:00Z"),
			Notes: "Family account",
		},
		{
			ID: "4", Name: "Bank of America", Username: "john.doe",
			Password: "BankSecure101!", URL: "https://bankofamerica.com", Category: "Finance",
			CreatedAt: at("2024-01-18T16:45:00Z"), UpdatedAt: at("2024-01-18T16:45:00Z"),
			Notes: "Checking account",
		},
		{
			ID: "5", Name: "Amazon", Username: "john.doe@amazon.com", Email: "john.doe@amazon.com",
			Password: "AmazonShop202!", URL: "https://amazon.com", Category: "Shopping",
			CreatedAt: at("2024-01-19T11:30:00Z"), UpdatedAt: at("2024-01-19T11:30:00Z"),
		},
		{
			ID: "6", Name: "LinkedIn", Username: "john.doe",
			Password: "LinkedInConnect303!", URL: "https://linkedin.com", Category: "Professional",
			CreatedAt: at("2024-01-20T13:20:00Z"), UpdatedAt: at("2024-01-20T13:20:00Z"),
		},
	}
}
