package market

import "ironledger/internal/domain"

// Companies returns the fixed list of listed companies in display order.
func Companies() []domain.Company {
	return []domain.Company{
		{Ticker: "BCI", Name: "BrassCog Industries", Description: "Specializes in manufacturing precision brass cogs and gears for airships and automatons."},
		{Ticker: "AETH", Name: "Aether Dynamics", Description: "A leading innovator in aether-based propulsion systems and energy harnessing technologies."},
		{Ticker: "CWR", Name: "Clockwork Corsairs Ltd.", Description: "Designs and produces modular automaton soldiers and personal defense systems."},
		{Ticker: "NASC", Name: "Nimbus & Sons Airship Co.", Description: "Renowned for their luxury dirigibles and airship travel services."},
		{Ticker: "SSF", Name: "Steamspire Foundry", Description: "Produces high-quality steam engines, turbines, and other essential industrial machinery."},
		{Ticker: "GLIM", Name: "Gaslight Illumination Corp.", Description: "A dominant player in gaslamp manufacturing, offering advanced lighting for urban and industrial use."},
		{Ticker: "IRON", Name: "Ironclad Armaments", Description: "Focuses on creating steam-powered exoskeletons, weaponry, and fortifications."},
		{Ticker: "VAPT", Name: "Vaporworks Transcontinental", Description: "Operates railways and trade routes with high-speed steam locomotives across continents."},
		{Ticker: "CHIM", Name: "Chimera Clockworks", Description: "Specializes in bespoke clockwork gadgets, mechanical pets, and high-end timepieces."},
		{Ticker: "GHRT", Name: "Gearheart Pharmaceuticals", Description: "Develops medical tonics, aetheric remedies, and advanced prosthetic enhancements."},
	}
}
