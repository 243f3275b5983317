package extractor

// BuildDeliveryNotePrompt returns the extraction prompt for scanned delivery
// notes and goods receipts.
func BuildDeliveryNotePrompt() string {
	return `You are a document data extraction assistant. Analyze the provided scanned delivery note (phiếu giao hàng) and extract its contents into the following JSON structure.

IMPORTANT INSTRUCTIONS:
- The note may be handwritten, photographed at an angle, or partially illegible. Extract every line item you can read. Do not skip, summarize, or merge items.
- Keep product names exactly as written, including Vietnamese diacritics. Do not translate.
- Quantities are numbers; strip thousand separators. Units are short words like "kg", "thùng", "cái", "chai".
- "unit_price" is the per-unit price if printed on the note; omit it when absent.
- "counterparty_name" is the supplier or shop name printed or stamped on the note; omit it when not legible.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation, just the raw JSON object.

The object must follow this schema:
{
  "counterparty_name": "",
  "items": [
    {
      "name": "",
      "quantity": 0,
      "unit": "",
      "unit_price": 0
    }
  ]
}`
}
