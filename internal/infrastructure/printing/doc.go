// Package printing provides infrastructure for turning order confirmations
// into PDF documents.
//
// This package contains:
// - ConfirmationTemplate for building the confirmation HTML per role
// - PDFRenderer interface for rendering HTML to PDF
// - ChromedpRenderer implementation driving headless Chrome over the
//   DevTools protocol
//
// Example usage:
//
//	renderer := printing.NewChromedpRenderer(&printing.ChromedpConfig{
//	    DefaultTimeout: 30 * time.Second,
//	})
//
//	result, err := renderer.Render(ctx, &printing.RenderRequest{
//	    HTML:    html,
//	    Margins: printing.ConfirmationMargins(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Generated PDF: %d bytes\n", len(result.PDFData))
package printing
