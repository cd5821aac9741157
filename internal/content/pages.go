package content

// Page is the data behind one of the static routes.
type Page struct {
	Path  string
	Title string
	Intro string
	Items []ListItem
}

var (
	aboutMe = `I like building software that is useful and a little bit fun, and I am
always curious about how things work underneath. Most projects start as a
small idea and turn into an excuse to learn something new.

Right now I am on the **Edge TPU** team at Google. Outside of work you can
find me reading, running, or poking at whatever side project is on fire
this month.`

	workIntro = `Places I have worked and what I did there.`

	projectsIntro = `Things I have built, mostly for fun and sometimes for
a hackathon. Each one links to the live site or the source.`

	contactIntro = `Leave a comment with how you are feeling today. The gauge
shows the *average mood* of everyone who stopped by.`
)

// Home is the landing page.
func Home() Page {
	return Page{
		Path:  "/",
		Title: "Home",
		Intro: aboutMe,
	}
}

// Work lists work history, most recent first.
func Work() Page {
	return Page{
		Path:  "/work",
		Title: "Work",
		Intro: workIntro,
		Items: []ListItem{
			NewListItem("Google", "May 2020 - Present", "Edge TPU Team", "images/goog.png"),
			NewListItem("MLevel", "January 2019 - August 2019", "Software Development Intern", "images/mlevel.png"),
		},
	}
}

// Projects lists side projects with links.
func Projects() Page {
	return Page{
		Path:  "/projects",
		Title: "Projects",
		Intro: projectsIntro,
		Items: []ListItem{
			NewListItem("TalkToEinstein", "March 2020 - Present", "Trying to talk to Albert",
				"images/einstein.jpg", "https://olemolvig.dev/talktoeinstein"),
			NewListItem("Dignify", "October 2019",
				"App that provides centralized access to resources for people experiencing homelessness",
				"images/dignify.png", "https://github.com/queden/dignify"),
		},
	}
}

// Contact hosts the contact form and the guestbook.
func Contact() Page {
	return Page{
		Path:  "/contact",
		Title: "Contact",
		Intro: contactIntro,
	}
}

// Pages returns every static page in navigation order.
func Pages() []Page {
	return []Page{Home(), Work(), Projects(), Contact()}
}
