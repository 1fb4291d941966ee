package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"omoro/internal/domain"
	"omoro/internal/notify"
	"omoro/internal/repos"
)

// ErrNotificationFailed means the enquiry was stored but the email hop failed.
var ErrNotificationFailed = errors.New("enquiry saved but notification failed")

type EnquiryService struct {
	Repo   *repos.EnquiryRepo
	Notify notify.Notifier
	Now    func() time.Time
}

func NewEnquiryService(repo *repos.EnquiryRepo, n notify.Notifier) *EnquiryService {
	return &EnquiryService{Repo: repo, Notify: n, Now: time.Now}
}

// Save stamps the date and "new" status, stores e and returns it with its id.
func (s *EnquiryService) Save(ctx context.Context, client string, e domain.Enquiry) (domain.Enquiry, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	e.ID = 0
	e.Date = now().UTC().Format(domain.DateLayout)
	e.Status = domain.EnquiryStatusNew
	id, err := s.Repo.Insert(ctx, client, e)
	if err != nil {
		return domain.Enquiry{}, fmt.Errorf("save enquiry: %w", err)
	}
	e.ID = id
	return e, nil
}

func (s *EnquiryService) List(ctx context.Context, client string) ([]domain.Enquiry, error) {
	return s.Repo.List(ctx, client)
}

func (s *EnquiryService) Delete(ctx context.Context, client string, id int64) error {
	return s.Repo.Delete(ctx, client, id)
}

// Submit saves the form's enquiry and then sends its notification. A failed
// notification returns ErrNotificationFailed; the saved record stays.
func (s *EnquiryService) Submit(ctx context.Context, client string, f Form) (domain.Enquiry, error) {
	saved, err := s.Save(ctx, client, f.Enquiry())
	if err != nil {
		return domain.Enquiry{}, err
	}
	if s.Notify == nil {
		return saved, nil
	}
	if err := s.Notify.Notify(ctx, f.Notification()); err != nil {
		return saved, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}
	return saved, nil
}

// Form is a visitor submission that yields a stored enquiry and an email.
type Form interface {
	Enquiry() domain.Enquiry
	Notification() notify.Message
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// ContactForm is the general contact page.
type ContactForm struct {
	Type      string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Location  string
	Message   string
}

func (f ContactForm) name() string {
	if f.LastName == "" {
		return f.FirstName
	}
	return f.FirstName + " " + f.LastName
}

func (f ContactForm) Enquiry() domain.Enquiry {
	return domain.Enquiry{
		Type: f.Type, Name: f.name(), Phone: f.Phone, Email: f.Email,
		Location: f.Location, Message: f.Message,
	}
}

func (f ContactForm) Notification() notify.Message {
	return notify.Message{
		Subject: "Enquiry: " + f.Type,
		Name:    f.name(),
		Email:   f.Email,
		Phone:   f.Phone,
		Message: fmt.Sprintf("Type: %s\nCompany: %s\nLocation: %s\nMessage: %s",
			f.Type, orNA(f.Company), orNA(f.Location), f.Message),
	}
}

// ProductEnquiryForm is the short form on a product page.
type ProductEnquiryForm struct {
	Name        string
	Phone       string
	Place       string
	ProductName string
	ModelNumber string
}

const productEnquiryMessage = "Interested in product"

func (f ProductEnquiryForm) Enquiry() domain.Enquiry {
	return domain.Enquiry{
		Type: domain.EnquiryProduct, Name: f.Name, Phone: f.Phone, Location: f.Place,
		ProductName: f.ProductName, ModelNumber: f.ModelNumber, Message: productEnquiryMessage,
	}
}

func (f ProductEnquiryForm) Notification() notify.Message {
	return notify.Message{
		Subject: "Product Enquiry: " + f.ProductName,
		Name:    f.Name,
		Email:   "Not Provided",
		Phone:   f.Phone,
		Message: fmt.Sprintf("Product: %s\nModel: %s\nLocation: %s\nMessage: %s",
			f.ProductName, f.ModelNumber, f.Place, productEnquiryMessage),
	}
}

// CustomProductForm requests a customized product; FileName is the attachment's name, if any.
type CustomProductForm struct {
	FirstName   string
	LastName    string
	Email       string
	CountryCode string
	Phone       string
	Info        string
	FileName    string
}

func (f CustomProductForm) name() string {
	return ContactForm{FirstName: f.FirstName, LastName: f.LastName}.name()
}

func (f CustomProductForm) phone() string {
	if f.CountryCode == "" {
		return f.Phone
	}
	return f.CountryCode + " " + f.Phone
}

func (f CustomProductForm) file() string {
	if f.FileName == "" {
		return "None"
	}
	return f.FileName
}

func (f CustomProductForm) Enquiry() domain.Enquiry {
	return domain.Enquiry{
		Type: domain.EnquiryCustomProduct, Name: f.name(), Phone: f.phone(), Email: f.Email,
		Message: fmt.Sprintf("%s (File: %s)", f.Info, f.file()),
	}
}

func (f CustomProductForm) Notification() notify.Message {
	return notify.Message{
		Subject: "Customized Product Request",
		Name:    f.name(),
		Email:   f.Email,
		Phone:   f.phone(),
		Message: fmt.Sprintf("Customization Info: %s\nFile Attached: %s", f.Info, f.file()),
	}
}
