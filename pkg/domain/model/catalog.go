package model

import "github.com/healthy-campus/hurs/pkg/domain/types"

// DefaultRubric returns the built-in HURS assessment catalog. It is used
// whenever no rubric file is supplied at startup.
func DefaultRubric() *Rubric {
	return &Rubric{
		Items: []Item{
			{
				Name: types.ItemName("SI 1.1 Healthy University Policy Statement"),
				Aspects: []KeyAspect{
					{
						Name: types.GroupName("Policy Documents"),
						Questions: []string{
							"Does the policy outline health-related objectives, strategies, and compliance with HUF?",
							"Does the policy highlight organizational commitment at university/faculty levels?",
							"Is the policy approved and reflective of the HUF framework?",
						},
					},
					{
						Name: types.GroupName("Activities and Programs"),
						Questions: []string{
							"Are health-related programs implemented across faculties and campuses?",
							"Are there examples like workshops or curriculum changes?",
							"Do activities align with HUF and cover faculties proportionally?",
						},
					},
					{
						Name: types.GroupName("Compliance and Audit Reports"),
						Questions: []string{
							"Are detailed reports available showing percentage of implementation?",
							"Is the data reliable and demonstrates adherence to the framework?",
							"Are there monitoring practices evident in the reports?",
						},
					},
					{
						Name: types.GroupName("Evidence Integrity"),
						Questions: []string{
							"Is there alignment between claimed implementation and supporting documents?",
							"Is the evidence recent, specific, and relevant?",
						},
					},
				},
			},
			{
				Name: types.ItemName("SI 1.2 Establishment of Responsible Body"),
				Aspects: []KeyAspect{
					{
						Name: types.GroupName("Organizational Charts"),
						Questions: []string{
							"Does the organizational chart show clear recognition of the responsible body at both university and faculty levels?",
							"Is there documentation explicitly identifying the responsible bodies as per HUF?",
						},
					},
					{
						Name: types.GroupName("Meeting Minutes"),
						Questions: []string{
							"Do meeting minutes illustrate deliberations and decisions regarding health promotion according to HUF?",
							"Are there examples of meetings covering both university-wide and faculty-specific activities?",
						},
					},
					{
						Name: types.GroupName("Annual Reports"),
						Questions: []string{
							"Do the annual reports detail activities undertaken by the responsible bodies?",
							"Are challenges and achievements explicitly highlighted in line with HUF?",
							"Are reports available for multiple years to demonstrate consistency?",
						},
					},
				},
			},
		},
	}
}
