package evidence

// keywordCorpus is the mock dataset served by the keyword provider. Quotes
// are short encyclopedic statements; sources point at the kind of outlet
// that would carry them.
var keywordCorpus = []struct {
	Source string
	Quote  string
}{
	{
		Source: "https://www.nasa.gov/vision/space/workinginspace/great_wall.html",
		Quote:  "The Great Wall of China is generally not visible from low Earth orbit with the unaided eye.",
	},
	{
		Source: "https://www.cdc.gov/vaccinesafety/concerns/autism.html",
		Quote:  "Studies covering millions of children have found no link between vaccines and autism.",
	},
	{
		Source: "https://www.nature.com/articles/d41586-019-01770-x",
		Quote:  "Moderate coffee consumption is associated with a lower risk of cardiovascular disease in large cohort studies.",
	},
	{
		Source: "https://www.britannica.com/place/Mount-Everest",
		Quote:  "Mount Everest's summit stands at 8,849 metres, the highest elevation on Earth's surface.",
	},
	{
		Source: "https://www.smithsonianmag.com/science-nature/the-science-behind-honeys-eternal-shelf-life-1218690/",
		Quote:  "Sealed honey recovered from ancient Egyptian tombs remained unspoiled after thousands of years.",
	},
	{
		Source: "https://www.sciencedirect.com/science/article/abs/pii/S0376635703001133",
		Quote:  "Goldfish form memories lasting months, not seconds, in associative learning experiments.",
	},
	{
		Source: "https://www.bmj.com/content/355/bmj.i6538",
		Quote:  "Double-blind trials show no effect of dietary sugar on children's behaviour or hyperactivity.",
	},
	{
		Source: "https://www.nationalgeographic.com/animals/article/bats-echolocation-vision-myths",
		Quote:  "All bat species have functional eyes and many see quite well; echolocation supplements rather than replaces vision.",
	},
	{
		Source: "https://www.britannica.com/biography/Napoleon-I",
		Quote:  "Napoleon stood about 1.69 metres tall, average height for a Frenchman of his era.",
	},
	{
		Source: "https://www.cdc.gov/antibiotic-use/colds.html",
		Quote:  "Antibiotics do not work against viruses that cause colds and flu.",
	},
	{
		Source: "https://climate.nasa.gov/evidence/",
		Quote:  "Atmospheric carbon dioxide has risen from 280 ppm preindustrial to over 420 ppm, driving observed warming.",
	},
	{
		Source: "https://www.nhlbi.nih.gov/health/sleep/how-much-sleep",
		Quote:  "Most adults need seven to nine hours of sleep per night for optimal health.",
	},
	{
		Source: "https://www.merckvetmanual.com/toxicology/food-hazards/chocolate-toxicosis-in-animals",
		Quote:  "Chocolate contains theobromine, which dogs metabolize slowly, making ingestion toxic to them.",
	},
	{
		Source: "https://solarsystem.nasa.gov/planets/venus/overview/",
		Quote:  "Venus, not Mercury, is the hottest planet in the solar system, with surface temperatures around 475 degrees Celsius.",
	},
}
