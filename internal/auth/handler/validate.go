/*
 * Copyright (c) 2025, the KeyRelay project.
 *
 * The KeyRelay project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package handler

import (
	"strings"

	"github.com/keyrelay/keyrelay/internal/auth/constants"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
)

// fieldError describes a single invalid request field using its dotted path.
type fieldError struct {
	field   string
	message string
}

// requiredString appends a field error when the given body field is blank.
func requiredString(errs []fieldError, field, value string) []fieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, fieldError{
			field:   "body." + field,
			message: "field is required",
		})
	}
	return errs
}

// validationError builds a validation service error from the collected field
// errors, or returns nil when there are none.
func validationError(errs []fieldError) *serviceerror.ServiceError {
	if len(errs) == 0 {
		return nil
	}

	parts := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		parts = append(parts, fieldErr.field+": "+fieldErr.message)
	}

	return serviceerror.CustomServiceError(constants.ErrorInvalidRequest, strings.Join(parts, "; "))
}
