package service

import (
	"fmt"

	"duebot-backend/models"
)

// extractionSystemPrompt pins the model to a fixed six-field JSON
// shape so the response can be decoded strictly. Extraction runs at
// temperature 0; the document text is passed as the user content.
const extractionSystemPrompt = `Extract invoice data and return ONLY valid JSON with these exact fields:
{
  "invoice_number": "string or null",
  "customer_name": "string or null",
  "customer_email": "string or null",
  "amount": number or null,
  "issue_date": "YYYY-MM-DD or null",
  "due_date": "YYYY-MM-DD or null"
}

Rules:
- Return ONLY the JSON object
- For amount, extract only the numeric value
- Dates must be YYYY-MM-DD format
- Use null if field not found`

// buildExtractionUserPrompt wraps the extracted document text.
func buildExtractionUserPrompt(documentText string) string {
	return fmt.Sprintf("Extract invoice data from:\n\n%s", documentText)
}

// buildReminderSystemPrompt parameterizes the drafting contract by
// tone: short subject, 3-4 paragraphs, no signature, JSON-only output.
func buildReminderSystemPrompt(tone models.Tone) string {
	return fmt.Sprintf(`You are a professional payment reminder assistant. Generate a %[1]s payment reminder email.

Rules:
- Subject line must be under 60 characters
- Email body should be 3-4 short paragraphs
- Tone: %[1]s (friendly/neutral/firm)
- Include invoice details clearly
- End with clear call-to-action
- Professional but human
- Do not include a signature or sender name
- Write in a natural, conversational style

Return ONLY valid JSON in this exact format:
{
  "subject": "string",
  "body": "string"
}`, tone)
}

// buildReminderUserPrompt embeds the invoice facts the draft must
// reference. Currency defaults to USD when the invoice has none.
func buildReminderUserPrompt(invoice *models.Invoice, daysOverdue int, tone models.Tone) string {
	currency := invoice.Currency
	if currency == "" {
		currency = "USD"
	}

	direction := "until due"
	if isOverdue(daysOverdue) {
		direction = "overdue"
	}

	days := daysOverdue
	if days < 0 {
		days = -days
	}

	return fmt.Sprintf(`Invoice details:
- Invoice #: %s
- Customer: %s
- Amount: $%.2f %s
- Due date: %s
- Days %s: %d

Generate a %s reminder email.`,
		invoice.InvoiceNumber,
		invoice.CustomerName,
		invoice.Amount,
		currency,
		invoice.DueDate.Format("January 2, 2006"),
		direction,
		days,
		tone,
	)
}
