// Package resume holds the resume-parsing domain: the field set extracted
// from resume text and the errors the operation can produce.
package resume

// FieldInstructions names the exact fields the completion model must
// extract from resume text. The resulting document's keys follow these
// field names.
const FieldInstructions = `Extract the following fields from the resume below:
- Full Name
- Email
- Phone Number
- Years of Experience
- Total Experience Summary
- Skills
- Certifications
- Degrees and Institutions
- Companies Worked At
- Job Titles Held
- Start and End Years of Each Role (if available)
- Projects (if mentioned)`
