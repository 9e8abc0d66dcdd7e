package handlers

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateAddCartItem(req AddCartItemRequest) []ValidationError {
	errs := []ValidationError{}
	if req.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductID", Description: "product_id must be a positive integer"})
	}
	return errs
}
