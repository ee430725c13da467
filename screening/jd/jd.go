// Package jd holds the job-description parsing domain.
package jd

// FieldInstructions names the hiring-requirement fields the completion
// model must extract from job-description text.
const FieldInstructions = `You are an AI that extracts structured hiring requirements from job descriptions.

Extract the following fields from the JD:
- Job Title
- Years of Experience Required
- Skills Required
- Location
- Employment Type (e.g., Full-time, Contract)
- Education Requirements
- Key Responsibilities
- Preferred Qualifications (if any)
- Benefits (if mentioned)`
