package routes

import (
	"net/http"
	"strings"

	"lightbill/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func register(path string, handler http.HandlerFunc) {
	http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(handler))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	rentalHandler *handlers.RentalHandler,
	clientHandler *handlers.ClientHandler,
	companyHandler *handlers.CompanyHandler,
	inventoryHandler *handlers.InventoryHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	settingsHandler *handlers.SettingsHandler,
	reportHandler *handlers.ReportHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// Auth routes
	register("/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		userHandler.Signup(w, r)
	})
	register("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		userHandler.Login(w, r)
	})

	// Rental routes
	register("/rentals", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			rentalHandler.CreateRental(w, r)
		case http.MethodGet:
			rentalHandler.GetRentals(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/rentals/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/rentals/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if rest, found := strings.CutSuffix(id, "/status"); found {
			if r.Method == http.MethodPatch || r.Method == http.MethodPut {
				rentalHandler.UpdateRentalStatus(w, r, rest)
				return
			}
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.Method {
		case http.MethodGet:
			rentalHandler.GetRentalByID(w, r, id)
		case http.MethodPut:
			rentalHandler.UpdateRental(w, r, id)
		case http.MethodDelete:
			rentalHandler.DeleteRental(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Client routes
	register("/clients", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			clientHandler.CreateClient(w, r)
		case http.MethodGet:
			clientHandler.GetClients(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/clients/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/clients/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			clientHandler.GetClientByID(w, r, id)
		case http.MethodPut:
			clientHandler.UpdateClient(w, r, id)
		case http.MethodDelete:
			clientHandler.DeleteClient(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Company routes
	register("/companies", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			companyHandler.CreateCompany(w, r)
		case http.MethodGet:
			companyHandler.GetCompanies(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/companies/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/companies/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			companyHandler.GetCompanyByID(w, r, id)
		case http.MethodPut:
			companyHandler.UpdateCompany(w, r, id)
		case http.MethodDelete:
			companyHandler.DeleteCompany(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Inventory routes
	register("/inventory", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			inventoryHandler.CreateItem(w, r)
		case http.MethodGet:
			inventoryHandler.GetItems(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/inventory/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/inventory/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			inventoryHandler.GetItemByID(w, r, id)
		case http.MethodPut:
			inventoryHandler.UpdateItem(w, r, id)
		case http.MethodDelete:
			inventoryHandler.DeleteItem(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Invoice routes, including the printable HTML page and the PDF export
	register("/invoices", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			invoiceHandler.CreateInvoice(w, r)
		case http.MethodGet:
			invoiceHandler.GetInvoices(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/invoices/html", invoiceHandler.InvoiceHTML)
	register("/invoices/pdf", pdfHandler.InvoicePDF)
	register("/invoices/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/invoices/")
		if id == "" || id == "html" || id == "pdf" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			invoiceHandler.GetInvoiceByID(w, r, id)
		case http.MethodPut:
			invoiceHandler.UpdateInvoice(w, r, id)
		case http.MethodDelete:
			invoiceHandler.DeleteInvoice(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Payment ledger: create and list only
	register("/payments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			paymentHandler.CreatePayment(w, r)
		case http.MethodGet:
			paymentHandler.GetPayments(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Settings
	register("/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			settingsHandler.SaveSettings(w, r)
		case http.MethodGet:
			settingsHandler.GetSettings(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Reports
	register("/reports", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		reportHandler.GetSummary(w, r)
	})
}
