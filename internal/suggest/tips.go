package suggest

// technicalTips maps a known technical skill to a targeted resume-editing
// tip. Skills without an entry get the generic fallback text.
var technicalTips = map[string]string{
	"python":             "Add Python to your Skills section or mention Python projects in your Experience section (e.g., 'Developed automated scripts using Python')",
	"java":               "Include Java in your technical skills or describe Java-based projects in your Experience section",
	"javascript":         "Highlight JavaScript experience in your Skills section or mention web development projects using JavaScript",
	"react":              "Add React to your frontend skills or describe React applications you've built",
	"sql":                "Include SQL in your technical skills or mention database work in your Experience section (e.g., 'Queried databases using SQL')",
	"aws":                "Add AWS to your cloud skills or mention cloud infrastructure work in your Experience section",
	"docker":             "Include Docker in your DevOps skills or describe containerization experience",
	"git":                "Add Git to your version control skills or mention collaborative development experience",
	"machine learning":   "Include Machine Learning in your Skills section or describe ML projects in your Experience section",
	"project management": "Highlight project management experience in your Experience section or add PM tools to your Skills section",
}

// softSkillTips maps a known soft skill to a targeted tip.
var softSkillTips = map[string]string{
	"leadership":      "Demonstrate leadership by describing times you led teams, mentored colleagues, or took initiative on projects",
	"communication":   "Highlight communication skills by mentioning presentations, client interactions, or cross-team collaboration",
	"teamwork":        "Showcase teamwork through examples of collaborative projects or cross-functional work",
	"problem solving": "Illustrate problem-solving abilities by describing challenges you've overcome or innovative solutions you've implemented",
	"management":      "Show management experience through examples of supervising others, managing projects, or overseeing processes",
	"analytical":      "Demonstrate analytical skills by mentioning data analysis, research projects, or systematic problem-solving approaches",
}

const (
	genericTechnicalTip = "Consider adding this skill to your Skills section or describing related experience in your work history"
	genericSoftSkillTip = "Consider adding examples that demonstrate this skill in your Experience or Summary section"
	genericKeywordTip   = "Look for opportunities to naturally incorporate this term in your Experience or Skills sections"
)
