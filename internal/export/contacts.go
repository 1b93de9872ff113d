package export

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dkerobean/WoocommerceOrders/internal/phone"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

var ContactsHeader = []string{
	"customer_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"address",
	"city",
	"total_orders",
	"last_order_date",
}

// ContactsWriter dumps the whole customer database as of this run into a
// dated file.
type ContactsWriter struct {
	Dir    string
	logger *logging.Logger
}

func NewContactsWriter(dir string, logger *logging.Logger) *ContactsWriter {
	return &ContactsWriter{Dir: dir, logger: logger.GetLoggerWithField("writer", "customer_contacts_csv")}
}

func (w *ContactsWriter) Name() string {
	return "customer_contacts_csv"
}

func (w *ContactsWriter) Write(batch *Batch) (string, error) {
	w.logger.Debug("ContactsWriter.Write:>Start")
	defer w.logger.Debug("ContactsWriter.Write:>End")

	rows := make([][]string, 0, len(batch.Customers))
	for _, c := range batch.Customers {
		canonical, _ := phone.Normalize(c.Phone)
		rows = append(rows, []string{
			c.ID,
			c.FirstName,
			c.LastName,
			c.Email,
			canonical,
			c.Address,
			c.City,
			strconv.Itoa(c.TotalOrders),
			c.LastOrderDate,
		})
	}

	path := filepath.Join(w.Dir, "customer_contacts_"+batch.Day.Format(FileDateLayout)+".csv")
	if err := writeCSV(path, Replace, ContactsHeader, rows); err != nil {
		return "", err
	}
	w.logger.Infof("%d customers written to %s", len(rows), path)
	return path, nil
}

// EmailsWriter appends the distinct billing emails of the run to emails.csv.
type EmailsWriter struct {
	Dir    string
	logger *logging.Logger
}

func NewEmailsWriter(dir string, logger *logging.Logger) *EmailsWriter {
	return &EmailsWriter{Dir: dir, logger: logger.GetLoggerWithField("writer", "emails_csv")}
}

func (w *EmailsWriter) Name() string {
	return "emails_csv"
}

func (w *EmailsWriter) Write(batch *Batch) (string, error) {
	seen := make(map[string]struct{})
	var rows [][]string
	for _, order := range batch.Orders {
		email := strings.TrimSpace(string(order.Billing.Email))
		if email == "" {
			continue
		}
		key := strings.ToLower(email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, []string{email})
	}

	path := filepath.Join(w.Dir, "emails.csv")
	if err := writeCSV(path, Append, []string{"Email"}, rows); err != nil {
		return "", err
	}
	w.logger.Infof("%d emails appended to %s", len(rows), path)
	return path, nil
}

// PhonesWriter appends the distinct canonical phones of the run to
// phone_numbers.csv.
type PhonesWriter struct {
	Dir    string
	logger *logging.Logger
}

func NewPhonesWriter(dir string, logger *logging.Logger) *PhonesWriter {
	return &PhonesWriter{Dir: dir, logger: logger.GetLoggerWithField("writer", "phones_csv")}
}

func (w *PhonesWriter) Name() string {
	return "phones_csv"
}

func (w *PhonesWriter) Write(batch *Batch) (string, error) {
	seen := make(map[string]struct{})
	var rows [][]string
	for _, order := range batch.Orders {
		canonical, ok := phone.Normalize(string(order.Billing.Phone))
		if !ok {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		rows = append(rows, []string{canonical})
	}

	path := filepath.Join(w.Dir, "phone_numbers.csv")
	if err := writeCSV(path, Append, []string{"Phone Number"}, rows); err != nil {
		return "", err
	}
	w.logger.Infof("%d phones appended to %s", len(rows), path)
	return path, nil
}
