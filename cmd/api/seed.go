package main

import (
	"context"
	"log"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/application/service"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/enum"
)

type demoQuote struct {
	customerName    string
	customerEmail   string
	customerPhone   string
	customerAddress string
	projectType     string
	propertySize    int
	budgetRange     string
	description     string
	timeline        string
	daysFromToday   int
	status          enum.QuoteStatus
	amount          string
}

// seedDemoData loads a sample dataset covering all statuses and a spread
// of requested dates, so the dashboard and calendar views have something
// to show. Quotes go through the lifecycle service so numbering and
// customer reuse behave exactly like real traffic.
func seedDemoData(quoteService *service.QuoteService) {
	ctx := context.Background()
	now := time.Now()

	quotes := []demoQuote{
		{
			customerName: "John Smith", customerEmail: "john@example.com",
			customerPhone: "(555) 123-4567", customerAddress: "123 Main St, Anytown, CA 90210",
			projectType: "Lawn Installation", propertySize: 2000,
			budgetRange: "$2,000 - $5,000", description: "New lawn installation with irrigation system",
			timeline: "2-3 weeks", daysFromToday: 1,
			status: enum.QuoteStatusPending,
		},
		{
			customerName: "Sarah Johnson", customerEmail: "sarah@example.com",
			customerPhone: "(555) 234-5678", customerAddress: "456 Oak Ave, Anytown, CA 90210",
			projectType: "Garden Design", propertySize: 1500,
			budgetRange: "$1,500 - $3,000", description: "Backyard garden design with flower beds",
			timeline: "1-2 weeks", daysFromToday: 5,
			status: enum.QuoteStatusApproved, amount: "2200.00",
		},
		{
			customerName: "Mike Davis", customerEmail: "mike@example.com",
			customerPhone: "(555) 345-6789", customerAddress: "789 Pine Rd, Anytown, CA 90210",
			projectType: "Tree Removal", propertySize: 500,
			budgetRange: "$500 - $1,000", description: "Remove two large oak trees from backyard",
			timeline: "1 week", daysFromToday: 10,
			status: enum.QuoteStatusCompleted, amount: "750.00",
		},
		{
			customerName: "Emily Wilson", customerEmail: "emily@example.com",
			customerPhone: "(555) 456-7890", customerAddress: "321 Elm St, Anytown, CA 90210",
			projectType: "Landscape Maintenance", propertySize: 3000,
			budgetRange: "$300 - $500", description: "Monthly landscape maintenance service",
			timeline: "Ongoing", daysFromToday: 15,
			status: enum.QuoteStatusApproved, amount: "400.00",
		},
		{
			customerName: "John Smith", customerEmail: "john@example.com",
			customerPhone: "(555) 123-4567", customerAddress: "123 Main St, Anytown, CA 90210",
			projectType: "Patio Installation", propertySize: 800,
			budgetRange: "$3,000 - $6,000", description: "Stone patio installation with seating area",
			timeline: "3-4 weeks", daysFromToday: 20,
			status: enum.QuoteStatusPending,
		},
		{
			customerName: "Sarah Johnson", customerEmail: "sarah@example.com",
			customerPhone: "(555) 234-5678", customerAddress: "456 Oak Ave, Anytown, CA 90210",
			projectType: "Sprinkler System", propertySize: 2500,
			budgetRange: "$1,000 - $2,500", description: "Install automated sprinkler system for front yard",
			timeline: "1-2 weeks", daysFromToday: -5,
			status: enum.QuoteStatusCompleted, amount: "1800.00",
		},
	}

	for _, q := range quotes {
		requestedDate := now.AddDate(0, 0, q.daysFromToday)
		budgetRange := q.budgetRange
		timeline := q.timeline

		quote, _, err := quoteService.CreateFromRequest(ctx, &service.QuoteRequestInput{
			CustomerName:    q.customerName,
			CustomerEmail:   q.customerEmail,
			CustomerPhone:   q.customerPhone,
			CustomerAddress: q.customerAddress,
			ProjectType:     q.projectType,
			PropertySize:    q.propertySize,
			BudgetRange:     &budgetRange,
			Description:     q.description,
			Timeline:        &timeline,
			RequestedDate:   &requestedDate,
		})
		if err != nil {
			log.Printf("Warning: failed to seed quote for %s: %v", q.customerEmail, err)
			continue
		}

		if q.status == enum.QuoteStatusPending {
			continue
		}

		status := q.status
		update := &service.UpdateQuoteInput{ID: quote.ID, Status: &status}
		if q.amount != "" {
			amount := q.amount
			update.Amount = &amount
		}
		if _, err := quoteService.UpdateQuote(ctx, update); err != nil {
			log.Printf("Warning: failed to finalize seeded quote %s: %v", quote.QuoteNumber, err)
		}
	}

	log.Printf("Seeded %d demo quotes", len(quotes))
}
